package request

import "console_comercial/internal/usecase"

// SignatureRequest is posted by the public signing page. Drawing is either a
// stored image URL or a data:image/...;base64 payload. Preconditions are
// checked by the workflow so each missing field gets its own error.
type SignatureRequest struct {
	Drawing     string `json:"drawing"`
	SignerName  string `json:"signer_name"`
	SignerEmail string `json:"signer_email"`
}

func (r SignatureRequest) ToInput() usecase.SignatureInput {
	return usecase.SignatureInput{
		Drawing:     r.Drawing,
		SignerName:  r.SignerName,
		SignerEmail: r.SignerEmail,
	}
}
