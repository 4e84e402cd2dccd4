// Package signing completes a confirmed signature: it seals the contract and
// sends the confirmation correspondence.
package signing

import (
	"context"
	"errors"
	"fmt"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/integrity"
	"console_comercial/internal/domain/template"
	"console_comercial/internal/domain/versioning"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrContractMissing = errors.New("contract not found for finalization")
	ErrDigestMismatch  = interfaces.ErrDigestMismatch
)

const confirmationSubject = "Contrato assinado - {{NOME_CLIENTE}}"

const confirmationBody = `<p>Olá, {{NOME_ASSINANTE}}.</p>
<p>O contrato de {{TIPO_EVENTO}} em {{DATA_EVENTO}} foi assinado em {{DATA_ASSINATURA}} às {{HORA_ASSINATURA}}.</p>
<p>Valor total: {{VALOR_TOTAL}} ({{VALOR_TOTAL_EXTENSO}}).</p>
<p>Versão {{VERSAO}}. Código de integridade do contrato: {{HASH_CONTRATO}}.</p>
<p>Consulte o documento em <a href="{{LINK_CONTRATO}}">{{LINK_CONTRATO}}</a>.</p>
<p>{{NOME_EMPRESA}} · {{TELEFONE_EMPRESA}} · {{EMAIL_EMPRESA}}</p>`

// Finalizer is the in-process ISignatureFinalizer. Mailer may be nil.
type Finalizer struct {
	repo   interfaces.IContractRepository
	mailer interfaces.IMailer
	store  *versioning.Store
	log    *logrus.Entry
}

var _ interfaces.ISignatureFinalizer = (*Finalizer)(nil)

func NewFinalizer(repo interfaces.IContractRepository, mailer interfaces.IMailer, store *versioning.Store) *Finalizer {
	return &Finalizer{repo: repo, mailer: mailer, store: store, log: logging.For("signature.finalizer")}
}

// Finalize moves a draft_signed contract to signed with the audit fields of
// the handoff. The write is conditioned on the revision the caller saw.
func (f *Finalizer) Finalize(ctx context.Context, h interfaces.SignatureHandoff) error {
	c, err := f.repo.GetByID(ctx, h.ContractID)
	if err != nil {
		return fmt.Errorf("load contract %s: %w", h.ContractID, err)
	}
	if c.ID == "" {
		return ErrContractMissing
	}
	if c.Status != entities.ContractStatusDraftSigned || c.Revision != h.ExpectedRevision {
		return interfaces.ErrStaleRevision
	}
	if h.ContentHash != "" && !integrity.Verify(integrity.ContractSnapshot(c), h.ContentHash) {
		return ErrDigestMismatch
	}

	signedAt := h.Timestamp.UTC()
	c.Status = entities.ContractStatusSigned
	c.PreviewSignatureURL = h.SignatureImage
	c.SignerName = h.SignerName
	c.SignerEmail = entities.NormalizeEmail(h.SignerEmail)
	c.SignerIP = h.OriginIdentifier
	c.SignerUserAgent = h.AgentString
	c.SignedAt = &signedAt
	c.UpdatedAt = signedAt
	f.store.Stamp(&c)

	saved, err := f.repo.Save(ctx, c, h.ExpectedRevision)
	if err != nil {
		return err
	}
	f.log.WithFields(logrus.Fields{"contract_id": saved.ID, "revision": saved.Revision}).Info("contract signed")

	f.sendConfirmations(ctx, saved)
	return nil
}

// sendConfirmations mails signer and company. Failures are logged only: the
// signature already stands.
func (f *Finalizer) sendConfirmations(ctx context.Context, c entities.Contract) {
	if f.mailer == nil {
		return
	}
	tctx := f.store.Context
	if tctx.Now.IsZero() {
		tctx.Now = f.store.Clock()
	}
	tokens := template.ContractTokens(c, tctx)
	subject := template.Render(confirmationSubject, tokens)
	body := template.Render(confirmationBody, tokens)

	for _, to := range recipients(c.SignerEmail, tctx.Company.Email) {
		digest := integrity.Digest(integrity.EmailSnapshot(to, subject, body, f.store.Clock()))
		stamped := body + "\n<p>Código de verificação desta mensagem: " + digest + "</p>"
		if err := f.mailer.Send(ctx, []string{to}, subject, stamped); err != nil {
			f.log.WithError(err).WithFields(logrus.Fields{"contract_id": c.ID, "to": to}).Warn("confirmation e-mail failed")
			continue
		}
		f.log.WithFields(logrus.Fields{"contract_id": c.ID, "to": to, "email_digest": digest}).Info("confirmation e-mail sent")
	}
}

func recipients(addrs ...string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = entities.NormalizeEmail(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
