package template

import (
	"strconv"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
)

// Catalog names. Bodies reference them as {{NAME}}.
const (
	NomeCliente      = "NOME_CLIENTE"
	EmailCliente     = "EMAIL_CLIENTE"
	TelefoneCliente  = "TELEFONE_CLIENTE"
	EnderecoCliente  = "ENDERECO_CLIENTE"
	ProfissaoCliente = "PROFISSAO_CLIENTE"
	EstadoCivil      = "ESTADO_CIVIL"

	TipoEvento    = "TIPO_EVENTO"
	DataEvento    = "DATA_EVENTO"
	HorarioEvento = "HORARIO_EVENTO"
	LocalEvento   = "LOCAL_EVENTO"

	ValorTotal            = "VALOR_TOTAL"
	ValorTotalExtenso     = "VALOR_TOTAL_EXTENSO"
	Entrada               = "ENTRADA"
	DataEntrada           = "DATA_ENTRADA"
	ValorRestante         = "VALOR_RESTANTE"
	DataPagamentoRestante = "DATA_PAGAMENTO_RESTANTE"

	Versao     = "VERSAO"
	DataVersao = "DATA_VERSAO"

	LinkContrato = "LINK_CONTRATO"

	IPAssinante    = "IP_ASSINANTE"
	UserAgent      = "USER_AGENT"
	HashContrato   = "HASH_CONTRATO"
	DataAssinatura = "DATA_ASSINATURA"
	HoraAssinatura = "HORA_ASSINATURA"
	NomeAssinante  = "NOME_ASSINANTE"
	EmailAssinante = "EMAIL_ASSINANTE"

	NomeEmpresa     = "NOME_EMPRESA"
	TelefoneEmpresa = "TELEFONE_EMPRESA"
	EmailEmpresa    = "EMAIL_EMPRESA"

	Observacoes = "OBSERVACOES"
	DataAtual   = "DATA_ATUAL"
)

// Company is the issuer boilerplate printed on every document.
type Company struct {
	Name  string
	Phone string
	Email string
}

// Context carries what resolution needs besides the document itself.
type Context struct {
	// Origin is the public base URL used for links, without trailing slash.
	Origin   string
	Company  Company
	Location *time.Location
	Now      time.Time
}

// ContractLink builds {origin}/contrato/{slug-or-token}.
func ContractLink(origin string, c entities.Contract) string {
	id := c.PublicIdentifier()
	if id == "" {
		return ""
	}
	return strings.TrimRight(origin, "/") + "/contrato/" + id
}

// ContractTokens resolves a contract into the full token table. Identity,
// event, financial, version, link and company fields always resolve (missing
// values become ""); audit fields only resolve once the data exists so
// unsigned drafts keep their placeholders.
func ContractTokens(c entities.Contract, ctx Context) Table {
	t := Table{}
	t.Set(NomeCliente, c.ClientName)
	t.Set(EmailCliente, c.ClientEmail)
	t.Set(TelefoneCliente, c.ClientPhone)
	t.Set(EnderecoCliente, c.ClientAddress)
	t.Set(ProfissaoCliente, c.ClientProfession)
	t.Set(EstadoCivil, c.ClientMaritalStatus)

	t.Set(TipoEvento, c.EventType)
	t.Set(DataEvento, FormatCalendarDate(c.EventDate))
	t.Set(HorarioEvento, c.EventTime)
	t.Set(LocalEvento, c.EventLocation)

	t.Set(ValorTotal, FormatBRL(c.TotalPrice))
	t.Set(ValorTotalExtenso, SpellOutBRL(c.TotalPrice))
	t.Set(Entrada, FormatBRL(c.DownPayment))
	t.Set(DataEntrada, FormatCalendarDate(c.DownPaymentDate))
	t.Set(ValorRestante, FormatBRL(c.RemainingAmount))
	t.Set(DataPagamentoRestante, FormatCalendarDate(c.RemainingDueDate))

	version := c.Version
	if version < 1 {
		version = 1
	}
	t.Set(Versao, strconv.Itoa(version))
	vts := c.VersionTimestamp
	t.Set(DataVersao, FormatDateTime(&vts, ctx.Location))

	t.Set(LinkContrato, ContractLink(ctx.Origin, c))
	t.Set(Observacoes, c.Notes)

	if c.ContentHash != "" {
		t.Set(HashContrato, c.ContentHash)
	}
	t.Merge(signatureTokens(c, ctx))
	t.Merge(companyTokens(ctx))
	return t
}

func signatureTokens(c entities.Contract, ctx Context) Table {
	t := Table{}
	if c.SignerName != "" {
		t.Set(NomeAssinante, c.SignerName)
	}
	if c.SignerEmail != "" {
		t.Set(EmailAssinante, c.SignerEmail)
	}
	if c.SignerIP != "" {
		t.Set(IPAssinante, c.SignerIP)
	}
	if c.SignerUserAgent != "" {
		t.Set(UserAgent, c.SignerUserAgent)
	}
	if c.SignedAt != nil && !c.SignedAt.IsZero() {
		t.Set(DataAssinatura, FormatDate(c.SignedAt, ctx.Location))
		t.Set(HoraAssinatura, FormatTime(c.SignedAt, ctx.Location))
	}
	return t
}

// ProposalTokens resolves the subset of the catalog a proposal carries.
func ProposalTokens(p entities.Proposal, ctx Context) Table {
	t := Table{}
	t.Set(NomeCliente, p.ClientName)
	t.Set(EmailCliente, p.ClientEmail)
	t.Set(TelefoneCliente, p.ClientPhone)
	t.Set(TipoEvento, p.EventType)
	t.Set(DataEvento, FormatCalendarDate(p.EventDate))
	t.Set(LocalEvento, p.EventLocation)
	t.Set(ValorTotal, FormatBRL(p.TotalPrice))
	t.Set(ValorTotalExtenso, SpellOutBRL(p.TotalPrice))
	if p.ContentHash != "" {
		t.Set(HashContrato, p.ContentHash)
	}
	t.Merge(companyTokens(ctx))
	return t
}

func companyTokens(ctx Context) Table {
	t := Table{}
	t.Set(NomeEmpresa, ctx.Company.Name)
	t.Set(TelefoneEmpresa, ctx.Company.Phone)
	t.Set(EmailEmpresa, ctx.Company.Email)
	if !ctx.Now.IsZero() {
		now := ctx.Now
		t.Set(DataAtual, FormatDate(&now, ctx.Location))
	}
	return t
}
