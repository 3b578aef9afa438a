package views

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"

	"tally/internal/gateway"
)

// RenderEnvelope prints the gateway envelope as indented JSON. The JSON
// goes to stdout unstyled so it stays pipeable; only the headline is
// decorated.
func RenderEnvelope(env gateway.Envelope) error {
	if env.Status >= 400 {
		pterm.Error.Printf("%s %s -> %d\n", env.Method, env.Endpoint, env.Status)
	} else {
		pterm.Success.Printf("%s %s -> %d\n", env.Method, env.Endpoint, env.Status)
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
