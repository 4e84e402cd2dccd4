package routes

import (
	"console_comercial/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// PathPublicContract is the signer-facing prefix; links sent to clients
// point here.
const PathPublicContract = "/contrato"

func addPublicContractRoutes(rg *gin.RouterGroup, contracts *handlers.ContractHandler, signatures *handlers.SignatureHandler) {
	public := rg.Group(PathPublicContract)
	{
		public.GET("/:identifier", contracts.GetPublicContract)
		public.POST("/:identifier/signature/preview", signatures.CapturePreview)
		public.DELETE("/:identifier/signature/preview", signatures.EditSignature)
		public.POST("/:identifier/signature/confirm", signatures.ConfirmSignature)
	}
}
