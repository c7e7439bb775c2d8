package ez

import (
	"errors"
	"testing"

	resp "go-resume-builder/internal/transport/http/response"
)

func TestAErrCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{BadRequest("bad"), resp.CodeBadRequest},
		{Unauthorized("unauth"), resp.CodeUnauthorized},
		{Forbidden("forbidden"), resp.CodeForbidden},
		{NotFound("missing"), resp.CodeNotFound},
		{Internal("boom", nil), resp.CodeServerError},
		{Unavailable("chrome down", nil), resp.CodeUpstreamError},
		{errors.New("plain"), resp.CodeServerError},
	}
	for _, tc := range cases {
		if got := codeOf(tc.err); got != tc.want {
			t.Errorf("codeOf(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestAErrUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("db error", cause)
	if !errors.Is(err, cause) {
		t.Error("Internal should wrap the cause")
	}
	if err.Error() != "db error" {
		t.Errorf("Error() = %q", err.Error())
	}

	// Msg 缺省时回退到内部错误文案
	bare := &AErr{Code: resp.CodeServerError, Err: cause}
	if bare.Error() != "connection refused" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
