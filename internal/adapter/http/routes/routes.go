package routes

import (
	"context"
	"net/http"

	_ "console_comercial/docs"
	"console_comercial/internal/adapter/http/handlers"
	"console_comercial/internal/adapter/persistence/repository"
	"console_comercial/internal/domain/funnel"
	"console_comercial/internal/domain/template"
	"console_comercial/internal/domain/versioning"
	"console_comercial/internal/infrastructure/cache"
	"console_comercial/internal/infrastructure/changefeed"
	"console_comercial/internal/infrastructure/config"
	"console_comercial/internal/infrastructure/database"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/infrastructure/mailer"
	"console_comercial/internal/infrastructure/origin"
	"console_comercial/internal/infrastructure/payments"
	"console_comercial/internal/infrastructure/signing"
	"console_comercial/internal/infrastructure/storage"
	"console_comercial/internal/usecase"
	"console_comercial/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Leads      *handlers.LeadHandler
	Proposals  *handlers.ProposalHandler
	Contracts  *handlers.ContractHandler
	Signatures *handlers.SignatureHandler
	Funnel     *handlers.FunnelHandler
	Payments   *handlers.ContractPaymentHandler
}

// Run wires the application from cfg and blocks serving HTTP.
func Run(cfg config.Config) {
	log := logging.For("routes")

	router := NewRouter(buildHandlers(context.Background(), cfg))
	log.WithField("port", cfg.Port).Info("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start the application")
	}
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, h.Leads)
	addProposalRoutes(v1, h.Proposals)
	addContractRoutes(v1, h.Contracts)
	addPublicContractRoutes(v1, h.Contracts, h.Signatures)
	addFunnelRoutes(v1, h.Funnel)
	addPaymentRoutes(v1, h.Payments)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) Handlers {
	log := logging.For("routes")

	ddb := database.ConnectDynamoDB(cfg)
	leadRepo := repository.NewLeadDynamoRepository(ddb, cfg.Tables.Leads)
	proposalRepo := repository.NewProposalDynamoRepository(ddb, cfg.Tables.Proposals)
	contractRepo := repository.NewContractDynamoRepository(ddb, cfg.Tables.Contracts)
	paymentRepo := repository.NewContractPaymentDynamoRepository(ddb, cfg.Tables.ContractPayments)

	viewCache, feed := buildCacheAndFeed(ctx, cfg)

	tmplCtx := template.Context{
		Origin: cfg.PublicOrigin,
		Company: template.Company{
			Name:  cfg.Company.Name,
			Phone: cfg.Company.Phone,
			Email: cfg.Company.Email,
		},
		Location: cfg.Location(),
	}
	store := versioning.New(tmplCtx)

	var mail interfaces.IMailer
	if cfg.SMTP.Enabled() {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn("SMTP not configured; signature confirmations will not be mailed")
	}

	var images interfaces.ISignatureImageStore
	if cfg.MinIO.Enabled() {
		s, err := storage.NewMinioSignatureStore(ctx, cfg.MinIO)
		if err != nil {
			log.WithError(err).Warn("signature storage unavailable; drawings stay inline")
		} else {
			images = s
		}
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.MercadoPago.MockMode {
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
		if err != nil {
			log.WithError(err).Warn("Mercado Pago gateway not configured")
		} else {
			gateway = gw
		}
	}

	resolver := origin.NewHTTPResolver(cfg.OriginLookupURL, &http.Client{Timeout: cfg.OriginLookupTimeout})
	finalizer := signing.NewFinalizer(contractRepo, mail, store)

	leadUseCase := usecase.NewLeadUseCase(leadRepo, feed)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, leadRepo, feed, tmplCtx)
	contractUseCase := usecase.NewContractUseCase(contractRepo, proposalRepo, viewCache, feed, store)
	signatureUseCase := usecase.NewSignatureUseCase(usecase.SignatureDeps{
		Repo:          contractRepo,
		Finalizer:     finalizer,
		Origin:        resolver,
		Images:        images,
		Cache:         viewCache,
		Feed:          feed,
		Store:         store,
		OriginTimeout: cfg.OriginLookupTimeout,
	})
	funnelUseCase := usecase.NewFunnelUseCase(leadRepo, proposalRepo, contractRepo, feed, funnel.Options{
		OrphanPolicy: funnel.ParseOrphanPolicy(cfg.FunnelOrphanPolicy),
	})
	paymentUseCase := usecase.NewContractPaymentUseCase(paymentRepo, contractRepo, gateway, usecase.PaymentSettings{
		MockMode:        cfg.MercadoPago.MockMode,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	})

	return Handlers{
		Leads:      handlers.NewLeadHandler(leadUseCase),
		Proposals:  handlers.NewProposalHandler(proposalUseCase),
		Contracts:  handlers.NewContractHandler(contractUseCase, cfg.PublicOrigin),
		Signatures: handlers.NewSignatureHandler(signatureUseCase),
		Funnel:     handlers.NewFunnelHandler(funnelUseCase),
		Payments:   handlers.NewContractPaymentHandler(paymentUseCase, cfg.MercadoPago.MockMode),
	}
}

// buildCacheAndFeed prefers Redis so several instances share public views and
// funnel notifications; without it both stay in process.
func buildCacheAndFeed(ctx context.Context, cfg config.Config) (interfaces.IContractViewCache, interfaces.IChangeFeed) {
	log := logging.For("routes")
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err == nil {
			return cache.NewRedisCache(client, cfg.ContractCacheTTL), changefeed.NewRedisFeed(client, changefeed.DefaultChannel)
		}
		log.WithError(err).Warn("redis unavailable; using in-process cache and change feed")
	}
	return cache.NewMemoryCache(cfg.ContractCacheTTL), changefeed.NewMemoryFeed()
}
