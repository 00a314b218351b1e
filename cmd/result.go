package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pathx/internal/report"
	"pathx/internal/session"
	"pathx/internal/store"
)

var resultCmd = &cobra.Command{
	Use:   "result [session-id]",
	Short: "Print the stored career report for the current (or a given) session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var sessionID string
		if len(args) == 1 {
			sessionID = args[0]
		} else {
			var sess session.Session
			if err := st.Records().Get(store.SessionKey(), &sess); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no session found; run pathx first")
				}
				return fmt.Errorf("load session: %w", err)
			}
			sessionID = sess.SessionID
		}

		var rec report.ResultRecord
		if err := st.Records().Get(store.ResultKey(sessionID), &rec); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no report stored for this session yet")
			}
			return fmt.Errorf("load report: %w", err)
		}

		if asJSON {
			_, err := os.Stdout.Write(append(rec.Raw, '\n'))
			return err
		}

		rep, err := rec.Parse()
		if err != nil {
			return fmt.Errorf("parse stored report: %w", err)
		}
		printReport(rep, rec.Source)
		return nil
	},
}

func printReport(rep report.Report, source string) {
	sep := strings.Repeat("─", 60)

	if source == report.SourceFallback {
		fmt.Println("(báo cáo mẫu)")
	}
	fmt.Printf("%s %s\n", rep.Personality.Emoji, rep.Personality.Title)
	fmt.Println(rep.Personality.Summary)
	fmt.Println(sep)

	ur := rep.UserResults
	fmt.Printf("IQ: %d/%d (%s)   EQ: %s\n", ur.IQScore, ur.IQOutOf, ur.IQLevel, ur.EQLevel)
	if len(ur.CareerInterests) > 0 {
		fmt.Printf("Lĩnh vực quan tâm: %s\n", strings.Join(ur.CareerInterests, ", "))
	}
	fmt.Println(sep)

	fmt.Println("Nghề nghiệp phù hợp:")
	for _, c := range rep.CareerRecommendations {
		fmt.Printf("  %s %s (%d%%)  %s\n", c.Emoji, c.Title, c.MatchPercent, c.SalaryRange)
	}
	fmt.Println(sep)

	fmt.Printf("Thần số học: số chủ đạo %d, số tính cách %d\n",
		rep.Numerology.LifePathNumber, rep.Numerology.PersonalityNumber)

	for _, r := range rep.LearningRoadmap {
		fmt.Printf("\nLộ trình: %s\n", r.Career)
		for _, p := range r.Phases {
			fmt.Printf("  %s\n", p.Phase)
			for _, task := range p.Tasks {
				fmt.Printf("    - %s\n", task)
			}
		}
	}
}

func init() {
	resultCmd.Flags().Bool("json", false, "Print the raw report JSON")
}
