package vaultcmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	vpkg "github.com/tagkeep/tagkeep/internal/vault"
	"golang.org/x/term"
)

var setCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Set or update a secret (defaults to the database-url secret)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := vpkg.SecretDatabaseURL
		if len(args) == 1 {
			name = strings.TrimSpace(args[0])
		}
		if name == "" {
			return errors.New("name must not be empty")
		}
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		st, err := vpkg.NewStore(cfg.Vault.Backend)
		if err != nil {
			return err
		}
		secret, err := promptSecret(fmt.Sprintf("Enter secret for %q: ", name))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.SetSecret(ctx, name, secret); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "secret %q stored in backend %q\n", name, cfg.Vault.Backend)
		return nil
	},
}

func init() {
	VaultCmd.AddCommand(setCmd)
}

// promptSecret reads the value without echo when stdin is a terminal; otherwise
// it consumes one line from stdin (piped input, CI).
func promptSecret(prompt string) ([]byte, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		return []byte(strings.TrimRight(string(b), "\r\n")), nil
	}
	fmt.Fprintln(os.Stderr, "warning: reading secret from stdin; input will not be masked")
	return readSecretLine(os.Stdin)
}

// readSecretLine reads one line; a missing trailing newline (EOF) is fine.
func readSecretLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
