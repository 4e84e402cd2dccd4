package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/integrity"
	"console_comercial/internal/usecase/interfaces"
	mock_interfaces "console_comercial/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type signatureMocks struct {
	repo      *mock_interfaces.MockIContractRepository
	finalizer *mock_interfaces.MockISignatureFinalizer
	origin    *mock_interfaces.MockIOriginResolver
	images    *mock_interfaces.MockISignatureImageStore
}

func newSignatureUseCase(t *testing.T, timeout time.Duration) (*SignatureUseCase, signatureMocks) {
	ctrl := gomock.NewController(t)
	m := signatureMocks{
		repo:      mock_interfaces.NewMockIContractRepository(ctrl),
		finalizer: mock_interfaces.NewMockISignatureFinalizer(ctrl),
		origin:    mock_interfaces.NewMockIOriginResolver(ctrl),
		images:    mock_interfaces.NewMockISignatureImageStore(ctrl),
	}
	uc := NewSignatureUseCase(SignatureDeps{
		Repo:          m.repo,
		Finalizer:     m.finalizer,
		Origin:        m.origin,
		Images:        m.images,
		Store:         testStore(),
		OriginTimeout: timeout,
	})
	return uc, m
}

func sentContract() entities.Contract {
	c := entities.Contract{
		ID: "c1", Slug: "ana-casamento", PublicToken: "tok", ClientName: "Ana", ClientEmail: "ana@example.com",
		EventType: "casamento", TotalPrice: 3000, Status: entities.ContractStatusSent, Version: 1, Revision: 3,
		CreatedAt: fixedNow.Add(-48 * time.Hour),
	}
	c.ContentHash = integrity.ContractDigest(c)
	return c
}

func previewedContract() entities.Contract {
	c := sentContract()
	drawn := fixedNow.Add(-time.Minute)
	c.Status = entities.ContractStatusDraftSigned
	c.PreviewSignatureURL = "https://cdn.example.com/sig.png"
	c.SignatureDrawnAt = &drawn
	c.SignerName = "Ana"
	c.SignerEmail = "ana@example.com"
	c.Revision = 4
	return c
}

func saveEcho(_ context.Context, c entities.Contract, _ int64) (entities.Contract, error) {
	c.Revision++
	return c, nil
}

func TestSignatureUseCase_CapturePreview(t *testing.T) {
	t.Run("sent to draft_signed", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "ana-casamento").Return(sentContract(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(saveEcho)

		res, err := uc.CapturePreview(context.Background(), "ana-casamento", SignatureInput{
			Drawing: "https://cdn.example.com/sig.png", SignerName: " Ana Souza ", SignerEmail: "ANA@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusDraftSigned {
			t.Fatalf("expected draft_signed, got %s", res.Status)
		}
		if res.PreviewSignatureURL != "https://cdn.example.com/sig.png" || res.SignatureDrawnAt == nil || !res.SignatureDrawnAt.Equal(fixedNow) {
			t.Fatalf("preview not persisted: %+v", res)
		}
		if res.SignerName != "Ana Souza" || res.SignerEmail != "ana@example.com" {
			t.Fatalf("signer not persisted: %+v", res)
		}
	})

	t.Run("data url is uploaded", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(sentContract(), nil)
		m.images.EXPECT().Put(gomock.Any(), "c1", "image/png", []byte("png-bytes")).Return("https://minio.local/signatures/c1.png", nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(saveEcho)

		res, err := uc.CapturePreview(context.Background(), "tok", SignatureInput{
			Drawing: "data:image/png;base64,cG5nLWJ5dGVz", SignerName: "Ana", SignerEmail: "ana@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PreviewSignatureURL != "https://minio.local/signatures/c1.png" {
			t.Fatalf("unexpected reference %q", res.PreviewSignatureURL)
		}
	})

	cases := []struct {
		name  string
		in    SignatureInput
		field string
		want  error
	}{
		{name: "missing drawing", in: SignatureInput{SignerName: "Ana", SignerEmail: "ana@example.com"}, field: "drawing", want: ErrMissingSignatureDrawing},
		{name: "blank name", in: SignatureInput{Drawing: "https://x/sig.png", SignerName: "  ", SignerEmail: "ana@example.com"}, field: "signer_name", want: ErrMissingSignerName},
		{name: "invalid email", in: SignatureInput{Drawing: "https://x/sig.png", SignerName: "Ana", SignerEmail: "ana@"}, field: "signer_email", want: ErrInvalidSignerEmail},
		{name: "missing email", in: SignatureInput{Drawing: "https://x/sig.png", SignerName: "Ana"}, field: "signer_email", want: ErrInvalidSignerEmail},
		{name: "broken data url", in: SignatureInput{Drawing: "data:image/png;base64,%%%", SignerName: "Ana", SignerEmail: "ana@example.com"}, field: "drawing", want: ErrInvalidSignatureDrawing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newSignatureUseCase(t, 0)
			m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(sentContract(), nil)

			_, err := uc.CapturePreview(context.Background(), "tok", tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var verr *SignatureValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Fatalf("expected validation error on %s, got %v", tc.field, err)
			}
		})
	}

	t.Run("signed contract", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := sentContract()
		c.Status = entities.ContractStatusSigned
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)

		_, err := uc.CapturePreview(context.Background(), "tok", SignatureInput{Drawing: "u", SignerName: "Ana", SignerEmail: "ana@example.com"})
		if !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})

	t.Run("stale write", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(sentContract(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).Return(entities.Contract{}, interfaces.ErrStaleRevision)

		_, err := uc.CapturePreview(context.Background(), "tok", SignatureInput{Drawing: "u", SignerName: "Ana", SignerEmail: "ana@example.com"})
		if !errors.Is(err, ErrSignatureConflict) {
			t.Fatalf("expected ErrSignatureConflict, got %v", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "nope").Return(entities.Contract{}, nil)

		_, err := uc.CapturePreview(context.Background(), "nope", SignatureInput{})
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestSignatureUseCase_Confirm(t *testing.T) {
	t.Run("without preview fails validation", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(sentContract(), nil)

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		var verr *SignatureValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrMissingSignatureDrawing) {
			t.Fatalf("expected missing drawing validation error, got %v", err)
		}
	})

	t.Run("hands off and returns the re-fetched contract", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		signed := c
		signed.Status = entities.ContractStatusSigned

		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "203.0.113.7").Return("203.0.113.7", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h interfaces.SignatureHandoff) error {
				if h.ContractID != "c1" || h.ExpectedRevision != 4 {
					t.Fatalf("unexpected handoff target: %+v", h)
				}
				if h.SignatureImage != c.PreviewSignatureURL || h.SignerName != "Ana" || h.SignerEmail != "ana@example.com" {
					t.Fatalf("unexpected signer data: %+v", h)
				}
				if h.OriginIdentifier != "203.0.113.7" || h.AgentString != "Mozilla/5.0" || !h.Timestamp.Equal(fixedNow) {
					t.Fatalf("unexpected audit data: %+v", h)
				}
				if h.ContentHash != c.ContentHash {
					t.Fatalf("unexpected digest %s", h.ContentHash)
				}
				return nil
			},
		)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(signed, nil)

		res, err := uc.Confirm(context.Background(), "tok", ConfirmInput{ClientHint: "203.0.113.7", AgentString: "Mozilla/5.0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusSigned {
			t.Fatalf("expected signed, got %s", res.Status)
		}
	})

	t.Run("capture and confirm in one request", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		var captured entities.Contract

		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(sentContract(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(ctx context.Context, c entities.Contract, rev int64) (entities.Contract, error) {
				captured, _ = saveEcho(ctx, c, rev)
				return captured, nil
			},
		)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("198.51.100.1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").DoAndReturn(
			func(context.Context, string) (entities.Contract, error) { return captured, nil },
		)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h interfaces.SignatureHandoff) error {
				if h.ExpectedRevision != 4 || h.SignatureImage != "https://x/sig.png" {
					t.Fatalf("unexpected handoff %+v", h)
				}
				return nil
			},
		)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Contract{ID: "c1", Status: entities.ContractStatusSigned}, nil)

		res, err := uc.Confirm(context.Background(), "tok", ConfirmInput{
			SignatureInput: SignatureInput{Drawing: "https://x/sig.png", SignerName: "Ana", SignerEmail: "ana@example.com"},
		})
		if err != nil || res.Status != entities.ContractStatusSigned {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("origin failure falls back to unknown", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("", errors.New("lookup failed"))
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h interfaces.SignatureHandoff) error {
				if h.OriginIdentifier != UnknownOrigin {
					t.Fatalf("expected unknown origin, got %q", h.OriginIdentifier)
				}
				return nil
			},
		)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)

		if _, err := uc.Confirm(context.Background(), "tok", ConfirmInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("origin timeout falls back to unknown", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 20*time.Millisecond)
		c := previewedContract()
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").DoAndReturn(
			func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h interfaces.SignatureHandoff) error {
				if h.OriginIdentifier != UnknownOrigin {
					t.Fatalf("expected unknown origin, got %q", h.OriginIdentifier)
				}
				return nil
			},
		)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)

		if _, err := uc.Confirm(context.Background(), "tok", ConfirmInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("finalization failure is retryable and leaves draft_signed", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("1.1.1.1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		if !errors.Is(err, ErrFinalizationFailed) {
			t.Fatalf("expected ErrFinalizationFailed, got %v", err)
		}
	})

	t.Run("concurrent change is a conflict", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		current := c
		current.Status = entities.ContractStatusSigned
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("1.1.1.1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(current, nil)

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		if !errors.Is(err, ErrSignatureConflict) {
			t.Fatalf("expected ErrSignatureConflict, got %v", err)
		}
	})

	t.Run("finalizer stale revision is a conflict", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("1.1.1.1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(interfaces.ErrStaleRevision)

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		if !errors.Is(err, ErrSignatureConflict) {
			t.Fatalf("expected ErrSignatureConflict, got %v", err)
		}
	})

	t.Run("digest changed during finalization is an integrity error", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("1.1.1.1", nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)
		m.finalizer.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(interfaces.ErrDigestMismatch)

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		if !errors.Is(err, ErrIntegrityMismatch) || errors.Is(err, ErrFinalizationFailed) {
			t.Fatalf("expected ErrIntegrityMismatch, got %v", err)
		}
	})

	t.Run("previewed contract without image fails validation", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		c.PreviewSignatureURL = ""
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		var verr *SignatureValidationError
		if !errors.As(err, &verr) || verr.Field != "drawing" {
			t.Fatalf("expected drawing validation error, got %v", err)
		}
	})

	t.Run("tampered content", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		c.TotalPrice = 1
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)
		m.origin.EXPECT().Resolve(gomock.Any(), "").Return("1.1.1.1", nil)

		_, err := uc.Confirm(context.Background(), "tok", ConfirmInput{})
		if !errors.Is(err, ErrIntegrityMismatch) {
			t.Fatalf("expected ErrIntegrityMismatch, got %v", err)
		}
	})

	t.Run("already signed", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		c.Status = entities.ContractStatusSigned
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)

		if _, err := uc.Confirm(context.Background(), "tok", ConfirmInput{}); !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})
}

func TestSignatureUseCase_EditSignature(t *testing.T) {
	t.Run("draft_signed back to sent", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(previewedContract(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(saveEcho)

		res, err := uc.EditSignature(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusSent || res.PreviewSignatureURL != "" || res.SignatureDrawnAt != nil {
			t.Fatalf("preview not cleared: %+v", res)
		}
	})

	t.Run("from sent is a conflict", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(sentContract(), nil)

		if _, err := uc.EditSignature(context.Background(), "tok"); !errors.Is(err, ErrSignatureConflict) {
			t.Fatalf("expected ErrSignatureConflict, got %v", err)
		}
	})

	t.Run("signed stays signed", func(t *testing.T) {
		uc, m := newSignatureUseCase(t, 0)
		c := previewedContract()
		c.Status = entities.ContractStatusSigned
		m.repo.EXPECT().GetByPublicIdentifier(gomock.Any(), "tok").Return(c, nil)

		if _, err := uc.EditSignature(context.Background(), "tok"); !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})
}

func TestDecodeDataURL(t *testing.T) {
	ct, data, err := decodeDataURL("data:image/jpeg;base64,aGk=")
	if err != nil || ct != "image/jpeg" || string(data) != "hi" {
		t.Fatalf("unexpected decode ct=%q data=%q err=%v", ct, data, err)
	}
	if _, _, err := decodeDataURL("data:image/png,raw"); err == nil {
		t.Fatalf("expected error for non-base64 data url")
	}
	if _, _, err := decodeDataURL("data:image/png;base64"); err == nil {
		t.Fatalf("expected error for missing payload")
	}
}
