package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ionite/ionap-cli/internal/api"
	"github.com/ionite/ionap-cli/internal/config"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "usage", err: fmt.Errorf("%w: bad args", ErrUsage), want: ExitUsage},
		{name: "config missing", err: fmt.Errorf("%w: /home/u/.ionap-cli.yaml", config.ErrMissing), want: ExitConfigMissing},
		{name: "api key not set", err: config.ErrNoAPIKey, want: ExitConfigMissing},
		{name: "config invalid", err: fmt.Errorf("%w: bad yaml", config.ErrInvalid), want: ExitConfigMissing},
		{name: "config exists", err: fmt.Errorf("%w: not overwriting", config.ErrExists), want: ExitConfigExists},
		{name: "validation", err: fmt.Errorf("%w: not a UUID", ErrValidation), want: ExitValidation},
		{name: "not found", err: &api.Error{StatusCode: http.StatusNotFound}, want: ExitNotFound},
		{name: "transport via api.Error", err: &api.Error{StatusCode: http.StatusBadGateway}, want: ExitTransport},
		{name: "transport sentinel", err: fmt.Errorf("%w: connection refused", api.ErrTransport), want: ExitTransport},
		{name: "file access", err: fmt.Errorf("%w: no such file", ErrFileAccess), want: ExitFileAccess},
		{name: "cobra error defaults to usage", err: errors.New(`unknown command "foo"`), want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Distinct(t *testing.T) {
	codes := []int{ExitTransport, ExitUsage, ExitConfigMissing, ExitConfigExists,
		ExitValidation, ExitNotFound, ExitFileAccess}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c == ExitOK {
			t.Errorf("failure code %d collides with ExitOK", c)
		}
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
}
