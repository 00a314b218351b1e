package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pathx/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved questionnaire session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if _, err := st.Records().GetRaw(store.SessionKey()); errors.Is(err, store.ErrNotFound) {
			fmt.Println("No saved session.")
			return nil
		}
		if err := st.Records().Delete(store.SessionKey()); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("Session cleared. Stored reports are kept.")
		return nil
	},
}
