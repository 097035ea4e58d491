package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/kiku/internal/client"
	"github.com/saulo-duarte/kiku/internal/clipboard"
	"github.com/saulo-duarte/kiku/internal/config"
	"github.com/saulo-duarte/kiku/internal/draft"
	"github.com/saulo-duarte/kiku/internal/form"
)

var (
	draftTheme      string
	draftBackground string
	draftContexts   []string
	draftEndpoint   string
	draftJSON       bool
	draftCopy       bool
)

// clipboardWriter is swapped in tests.
var clipboardWriter clipboard.Writer = clipboard.System{}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a questionnaire draft and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		session := form.NewSession()
		session.SetTheme(draftTheme)
		session.SetBackground(draftBackground)
		for _, label := range draftContexts {
			c := draft.UnheardContext(label)
			if !c.IsValid() {
				return fmt.Errorf("%q: %w", label, draft.ErrUnknownContext)
			}
			session.Toggle(c)
		}

		if !session.CanSubmit() {
			return form.ErrIncomplete
		}

		resp, err := session.Submit(cmd.Context(), submitter(cfg))
		if err != nil {
			if errors.Is(err, client.ErrTransport) {
				return errors.New("エラーが発生しました")
			}
			return err
		}

		text := draft.Serialize(resp.Structure)
		if err := writeDraft(cmd.OutOrStdout(), resp, text, draftJSON); err != nil {
			return err
		}

		if draftCopy {
			clipboard.Copy(cmd.Context(), clipboardWriter, text)
		}
		return nil
	},
}

func submitter(cfg *config.Config) form.Submitter {
	endpoint := cfg.Client.Endpoint
	if draftEndpoint != "" {
		endpoint = draftEndpoint
	}
	if endpoint != "" {
		return client.New(endpoint, cfg.Client.Timeout())
	}
	return form.ServiceSubmitter(draft.NewDraftContainer(cfg.Draft).Service)
}

func writeDraft(w io.Writer, resp *draft.GenerateResponse, text string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func init() {
	draftCmd.Flags().StringVar(&draftTheme, "theme", "", "what you want to ask about")
	draftCmd.Flags().StringVar(&draftBackground, "background", "", "why you want to ask now")
	draftCmd.Flags().StringArrayVar(&draftContexts, "context", nil, "people whose voice rarely reaches you (repeatable)")
	draftCmd.Flags().StringVar(&draftEndpoint, "endpoint", "", "remote API base URL; generates locally when empty")
	draftCmd.Flags().BoolVar(&draftJSON, "json", false, "print the JSON response instead of text")
	draftCmd.Flags().BoolVar(&draftCopy, "copy", false, "copy the text draft to the clipboard")
	rootCmd.AddCommand(draftCmd)
}
