package validators

import (
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "calculator"},
		{name: "with hyphen", input: "my-server"},
		{name: "with digits", input: "server2"},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: "Calculator", wantErr: true},
		{name: "leading digit", input: "2fast", wantErr: true},
		{name: "leading hyphen", input: "-server", wantErr: true},
		{name: "trailing hyphen", input: "server-", wantErr: true},
		{name: "underscore", input: "my_server", wantErr: true},
		{name: "path separator", input: "a/b", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 65), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
