package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/signin"
	"github.com/bft-labs/signin/internal/adapters/token"
	"github.com/bft-labs/signin/internal/cliconfig"
)

// accountView is what gets printed for a signed-in account.
type accountView struct {
	Name        string      `json:"name"`
	AccessToken string      `json:"accessToken"`
	Token       *token.Info `json:"token,omitempty"`
}

func newAccountView(account signin.AccountModel) accountView {
	v := accountView{Name: account.Name, AccessToken: account.AccessToken}
	// opaque tokens are printed without claims
	if info, err := token.Inspect(account.AccessToken); err == nil {
		v.Token = &info
	}
	return v
}

func printAccount(w io.Writer, format string, account signin.AccountModel) error {
	v := newAccountView(account)

	if format == cliconfig.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	fmt.Fprintf(w, "Signed in as %s\n", v.Name)
	fmt.Fprintf(w, "Access token: %s\n", v.AccessToken)
	if v.Token == nil {
		return nil
	}
	if v.Token.Subject != "" {
		fmt.Fprintf(w, "Subject: %s\n", v.Token.Subject)
	}
	if !v.Token.ExpiresAt.IsZero() {
		state := "valid"
		if v.Token.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(w, "Expires: %s (%s)\n", v.Token.ExpiresAt.Format(time.RFC3339), state)
	}
	return nil
}
