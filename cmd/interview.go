package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/preptalk/internal/bank"
	"github.com/abhisek/preptalk/internal/evaluate"
	"github.com/abhisek/preptalk/internal/jd"
	"github.com/abhisek/preptalk/internal/llm"
	"github.com/abhisek/preptalk/internal/logger"
	"github.com/abhisek/preptalk/internal/questiongen"
	"github.com/abhisek/preptalk/internal/report"
	"github.com/abhisek/preptalk/internal/session"
)

const (
	promptModeRole = "Role-based interview"
	promptModeJD   = "Job-description interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an adaptive mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func init() {
	interviewCmd.Flags().IntP("questions", "n", 5, "number of questions to ask")
	interviewCmd.Flags().String("bank", "", "extra question bank YAML file")
	interviewCmd.Flags().String("reports-dir", "reports", "directory for exported JSON reports")
	interviewCmd.Flags().Bool("offline", false, "skip the LLM provider and use the built-in bank only")
	interviewCmd.Flags().Bool("show-model-answers", false, "print the model answer after each evaluation")
}

func runInterview(cmd *cobra.Command) error {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()

	qb, err := loadBank(cmd)
	if err != nil {
		return err
	}

	collab := session.Collaborators{Bank: qb, Logger: log}

	offline, _ := cmd.Flags().GetBool("offline")
	if !offline {
		provider, perr := llm.NewProviderFromEnv(ctx, log)
		if perr != nil {
			log.Warn("no LLM provider configured, running offline", zap.Error(perr))
		} else {
			collab.Generator = questiongen.New(provider, questiongen.DefaultConfig())
			collab.Evaluator = evaluate.NewLLMEvaluator(provider, evaluate.DefaultConfig())
			collab.Assessor = evaluate.NewLLMAssessor(provider, evaluate.DefaultConfig())
			collab.JDParser = jd.NewLLMParser(provider)
		}
	}

	params, err := gatherParams(cmd, qb)
	if err != nil {
		return err
	}

	sess, err := session.New(*params, collab)
	if err != nil {
		return err
	}

	greeting := sess.Start(ctx)
	fmt.Println()
	fmt.Println(greeting.Message)
	if params.Mode == session.ModeJobDescription && !greeting.JDParsed {
		fmt.Println("(job description could not be analyzed, questions will be role-based)")
	}
	fmt.Println()

	total, _ := cmd.Flags().GetInt("questions")
	if total < 1 {
		total = 1
	}
	showModel, _ := cmd.Flags().GetBool("show-model-answers")

	reader := bufio.NewReader(os.Stdin)
	for i := 0; i < total; i++ {
		q := sess.NextQuestion(ctx)
		fmt.Printf("Question %d/%d [%s]\n%s\n\n", q.Number, total, q.Category, q.Question)

		fmt.Print("Your answer (finish with an empty line):\n> ")
		answer := readMultiline(reader)

		result := sess.SubmitAnswer(ctx, answer)
		printFeedback(result, showModel)
	}

	rep := sess.FinalReport(ctx)
	printReport(rep)

	return persistReport(cmd, rep, log)
}

func loadBank(cmd *cobra.Command) (*bank.Bank, error) {
	extra, _ := cmd.Flags().GetString("bank")
	if extra == "" {
		return bank.Default(), nil
	}
	qb, err := bank.Load(extra)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return qb, nil
}

func gatherParams(cmd *cobra.Command, qb *bank.Bank) (*session.Params, error) {
	name, err := (&promptui.Prompt{
		Label: "Your name",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
	}).Run()
	if err != nil {
		return nil, err
	}

	_, modeChoice, err := (&promptui.Select{
		Label: "Interview mode",
		Items: []string{promptModeRole, promptModeJD},
	}).Run()
	if err != nil {
		return nil, err
	}

	mode := session.ModeRoleBased
	if modeChoice == promptModeJD {
		mode = session.ModeJobDescription
	}

	_, role, err := (&promptui.Select{
		Label: "Target role",
		Items: qb.Roles(),
		Size:  len(qb.Roles()),
	}).Run()
	if err != nil {
		return nil, err
	}

	company, err := (&promptui.Prompt{Label: "Target company (optional)"}).Run()
	if err != nil {
		return nil, err
	}

	params := &session.Params{
		CandidateName: strings.TrimSpace(name),
		Roles:         []string{role},
		Company:       strings.TrimSpace(company),
		Mode:          mode,
	}

	if mode == session.ModeJobDescription {
		fmt.Println("Paste the job description, finish with an empty line:")
		params.JobDescription = readMultiline(bufio.NewReader(os.Stdin))
		if strings.TrimSpace(params.JobDescription) == "" {
			return nil, fmt.Errorf("job description is required in JD mode")
		}
	}

	return params, nil
}

// readMultiline collects lines until the first empty one.
func readMultiline(r *bufio.Reader) string {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" || err != nil {
			if line != "" {
				lines = append(lines, line)
			}
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func printFeedback(r *session.AnsweredQuestion, showModel bool) {
	if r == nil {
		return
	}
	ev := r.Evaluation

	fmt.Printf("\nScore: %.1f/10\n", ev.Score)
	fmt.Println(ev.Assessment)
	if ev.Tested != "" {
		fmt.Printf("What this tested: %s\n", ev.Tested)
	}
	if len(ev.Mistakes) > 0 {
		fmt.Println("Mistakes:")
		for _, m := range ev.Mistakes {
			fmt.Printf("  - %s\n", m)
		}
	}
	if ev.MentorGuidance != "" {
		fmt.Printf("Guidance: %s\n", ev.MentorGuidance)
	}
	if len(ev.Improvements) > 0 {
		fmt.Println("How to improve:")
		for _, s := range ev.Improvements {
			fmt.Printf("  - %s\n", s)
		}
	}
	if showModel && ev.ModelAnswer != "" {
		fmt.Printf("Model answer: %s\n", ev.ModelAnswer)
	}
	fmt.Println()
}

func printReport(rep *session.FinalReport) {
	sep := strings.Repeat("─", 60)
	fmt.Println(sep)
	fmt.Println("FINAL REPORT")
	fmt.Println(sep)
	fmt.Printf("Candidate:      %s\n", rep.CandidateName)
	fmt.Printf("Roles:          %s\n", strings.Join(rep.Roles, ", "))
	if rep.Company != "" {
		fmt.Printf("Company:        %s\n", rep.Company)
	}
	fmt.Printf("Date:           %s\n", rep.InterviewDate)
	fmt.Printf("Duration:       %.1f min\n", rep.DurationMinutes)
	fmt.Printf("Questions:      %d\n", rep.Questions)
	fmt.Printf("Average score:  %.2f/10\n", rep.AverageScore)
	fmt.Printf("Score trend:    %s\n", rep.ScoreTrend)

	if len(rep.Categories) > 0 {
		fmt.Println("\nBy category:")
		for _, c := range rep.Categories {
			fmt.Printf("  %-12s %.2f/10 (%d question(s))\n", c.Category, c.Average, c.Count)
		}
	}

	if a := rep.Assessment; a != nil {
		fmt.Println(sep)
		fmt.Printf("Readiness: %s\n", a.ReadinessLevel)
		if a.SuccessProbability != "" {
			fmt.Printf("Estimated success: %s\n", a.SuccessProbability)
		}
		if len(a.TopStrengths) > 0 {
			fmt.Println("Strengths:")
			for _, s := range a.TopStrengths {
				fmt.Printf("  - %s\n", s)
			}
		}
		if len(a.CriticalGaps) > 0 {
			fmt.Println("Gaps:")
			for _, g := range a.CriticalGaps {
				fmt.Printf("  - %s\n", g)
			}
		}
		if len(a.Recommendations) > 0 {
			fmt.Println("Recommendations:")
			for _, r := range a.Recommendations {
				fmt.Printf("  - %s\n", r)
			}
		}
		if a.Overall != "" {
			fmt.Println()
			fmt.Println(a.Overall)
		}
	}
	fmt.Println(sep)
}

// persistReport fans out to the JSON file sink and the SQLite archive.
// Failure of either is reported but does not fail the interview.
func persistReport(cmd *cobra.Command, rep *session.FinalReport, log *zap.Logger) error {
	ctx := context.Background()

	dir, _ := cmd.Flags().GetString("reports-dir")
	if sink, err := report.NewFileSink(dir); err != nil {
		log.Warn("report file sink unavailable", zap.Error(err))
	} else if err := sink.Persist(ctx, rep); err != nil {
		log.Warn("export report to file", zap.Error(err))
	} else {
		fmt.Println("Report saved to " + sink.Path(rep))
	}

	s, err := openStore(cmd)
	if err != nil {
		log.Warn("report archive unavailable", zap.Error(err))
		return nil
	}
	defer s.Close()

	if err := s.Persist(ctx, rep); err != nil {
		log.Warn("archive report", zap.Error(err))
	}
	return nil
}
