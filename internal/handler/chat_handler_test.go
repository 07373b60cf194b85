package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func chatContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChatHandler_Chat(t *testing.T) {
	e := echo.New()

	t.Run("empty message", func(t *testing.T) {
		c, rec := chatContext(e, `{"message":"  "}`)
		_ = NewChatHandler(&stubCompleter{}).Chat(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		if envelope["reply"] != "No message provided." {
			t.Fatalf("unexpected body: %v", envelope)
		}
		if _, present := envelope["ok"]; present {
			t.Fatalf("chat errors must not use the ok envelope: %v", envelope)
		}
	})

	t.Run("upstream error", func(t *testing.T) {
		completer := &stubCompleter{
			complete: func(ctx context.Context, message string) (string, error) {
				return "", fmt.Errorf("%w: status 429", ErrChatUpstream)
			},
		}
		c, rec := chatContext(e, `{"message":"hello"}`)
		_ = NewChatHandler(completer).Chat(c)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		if envelope["reply"] != "OpenAI API returned an error." {
			t.Fatalf("unexpected body: %v", envelope)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		completer := &stubCompleter{
			complete: func(ctx context.Context, message string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		c, rec := chatContext(e, `{"message":"hello"}`)
		_ = NewChatHandler(completer).Chat(c)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		if envelope["reply"] != "Sorry, something went wrong on the server." {
			t.Fatalf("unexpected body: %v", envelope)
		}
	})

	t.Run("empty completion falls back", func(t *testing.T) {
		completer := &stubCompleter{
			complete: func(ctx context.Context, message string) (string, error) {
				return "", nil
			},
		}
		c, rec := chatContext(e, `{"message":"hello"}`)
		_ = NewChatHandler(completer).Chat(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		if envelope["reply"] != "No reply" {
			t.Fatalf("unexpected body: %v", envelope)
		}
	})

	t.Run("success", func(t *testing.T) {
		completer := &stubCompleter{
			complete: func(ctx context.Context, message string) (string, error) {
				if message != "which sofa fits a small flat?" {
					t.Fatalf("message not forwarded: %q", message)
				}
				return "A two-seater with slim arms.", nil
			},
		}
		c, rec := chatContext(e, `{"message":"which sofa fits a small flat?"}`)
		_ = NewChatHandler(completer).Chat(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		if envelope["reply"] != "A two-seater with slim arms." {
			t.Fatalf("unexpected body: %v", envelope)
		}
	})
}
