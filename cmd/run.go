package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ArifBabayev05/cvibes/internal/ai"
	"github.com/ArifBabayev05/cvibes/internal/ai/gemini"
	"github.com/ArifBabayev05/cvibes/internal/cvibes"
	"github.com/ArifBabayev05/cvibes/internal/logger"
	"github.com/ArifBabayev05/cvibes/internal/query"
	"github.com/ArifBabayev05/cvibes/internal/render"
	"github.com/ArifBabayev05/cvibes/internal/secrets"
	"github.com/ArifBabayev05/cvibes/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowCandidates = "Show candidates"
	PromptSearch         = "Search"
	PromptSortByName     = "Sort by name"
	PromptSortByStatus   = "Sort by status"
	PromptOpenCandidate  = "Open candidate"
	PromptToggleDarkMode = "Toggle dark mode"
	PromptDumpToFile     = "Dump candidates to file"
	PromptExit           = "Exit"
)

var errExit = errors.New("exit requested")

var browsePrompt = promptui.Select{
	Label: "Choose an action",
	Items: []string{
		PromptShowCandidates, PromptSearch, PromptSortByName, PromptSortByStatus,
		PromptOpenCandidate, PromptToggleDarkMode, PromptDumpToFile, PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run <files...>",
	Short: "Analyze the given CV files and browse the extracted candidates",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("dark", false, "start with the dark colour theme")
	runCmd.Flags().Bool("no-browse", false, "print the candidate list once and exit")

	viper.BindPFlag("dark", runCmd.Flags().Lookup("dark"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cvibes cli", zap.String("version", version))

	files := supportedFiles(args, logger)
	if len(files) == 0 {
		logger.Fatal("no supported CV files given", zap.String("hint", "supported formats are pdf, doc and docx"))
	}

	documents, err := cvibes.EncodeFiles(files)
	if err != nil {
		// A read failure aborts the whole batch before any network call.
		logger.Error("could not read a local file", zap.Error(err))
		return
	}

	logger.Info("encoded documents for analysis", zap.Int("count", len(documents)))

	client := newClient(ctx, config, logger)

	candidates, dropped, err := client.Analyze(documents)
	if err != nil {
		if errors.Is(err, cvibes.ErrEmptyResult) {
			logger.Warn("no valid CVs were found in the analysis results", zap.Int("dropped", dropped))
			return
		}

		var transportErr *cvibes.TransportError
		if errors.As(err, &transportErr) {
			logger.Error("failed to analyze CVs",
				zap.Int("status", transportErr.StatusCode),
				zap.String("message", transportErr.Message),
			)
			return
		}

		logger.Error("failed to analyze CVs", zap.Error(err))
		return
	}

	logger.Info("analysis completed",
		zap.Int("candidates", candidates.Len()),
		zap.Int("dropped", dropped),
	)

	scoreCandidates(ctx, config.Match, candidates, logger)

	st := store.New()
	st.Subscribe(func(state store.State) {
		logger.Debug("store updated",
			zap.Int("candidates", len(state.Candidates)),
			zap.Bool("dark_mode", state.DarkMode),
		)
	})

	if viper.GetBool("dark") {
		st.ToggleDarkMode()
	}

	st.AddAll(candidates.Items)

	if cmd.Flag("no-browse").Value.String() == "true" {
		printList(st, "", query.DefaultSort())
		return
	}

	if err := browse(st, logger); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("exiting", zap.Error(err))
	}
}

// browse is the interactive loop over the store: list with search and
// sort, detail lookup by id, dark mode and dump actions.
func browse(st *store.Store, logger *zap.Logger) error {
	term := ""
	sort := query.DefaultSort()

	printList(st, term, sort)

	for {
		_, action, err := browsePrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptShowCandidates:
			printList(st, term, sort)
		case PromptSearch:
			prompt := promptui.Prompt{Label: "Search term (empty keeps all)"}
			input, err := prompt.Run()
			if err != nil {
				return err
			}
			term = strings.TrimSpace(input)
			printList(st, term, sort)
		case PromptSortByName:
			sort.Toggle(query.FieldName)
			printList(st, term, sort)
		case PromptSortByStatus:
			sort.Toggle(query.FieldStatus)
			printList(st, term, sort)
		case PromptOpenCandidate:
			if err := openCandidate(st); err != nil {
				return err
			}
		case PromptToggleDarkMode:
			st.ToggleDarkMode()
			printList(st, term, sort)
		case PromptDumpToFile:
			snapshot := st.Snapshot()
			collection := &cvibes.Candidates{Items: snapshot.Candidates}
			filename, err := collection.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump candidates to file: %w", err)
			}
			logger.Info("dumped candidates to file", zap.String("filename", filename))
		case PromptExit:
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

// openCandidate resolves an id against the store. An unknown id renders the
// not-found view and falls back to the list; it is never an error.
func openCandidate(st *store.Store) error {
	prompt := promptui.Prompt{Label: "Candidate id"}
	id, err := prompt.Run()
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	snapshot := st.Snapshot()
	renderer := render.New(snapshot.DarkMode)

	candidate := st.FindByID(id)
	if candidate == nil {
		fmt.Println(renderer.NotFound(id))
		return nil
	}

	st.Select(candidate)
	fmt.Println(renderer.Details(candidate))

	return nil
}

func printList(st *store.Store, term string, sort query.Sort) {
	snapshot := st.Snapshot()
	renderer := render.New(snapshot.DarkMode)
	visible := query.Apply(snapshot.Candidates, term, sort)
	fmt.Println(renderer.List(visible))
}

func supportedFiles(args []string, logger *zap.Logger) []string {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if !cvibes.SupportedFile(arg) {
			logger.Warn("skipping unsupported file", zap.String("file", arg))
			continue
		}
		files = append(files, arg)
	}
	return files
}

func newClient(ctx context.Context, config *Config, logger *zap.Logger) *cvibes.Client {
	token := ""
	if config.API != nil && strings.TrimSpace(config.API.TokenFile) != "" {
		loaded, err := secrets.Load(secrets.Source{
			Name: "analysis api token",
			File: config.API.TokenFile,
		})
		if err != nil {
			logger.Warn("proceeding without api token", zap.Error(err))
		} else {
			token = loaded
		}
	}

	client := cvibes.New(ctx, logger, token)

	if config.API != nil {
		if config.API.URL != "" {
			client.APIURL = config.API.URL
		}
		if config.API.UserAgent != "" {
			client.UserAgent = config.API.UserAgent
		}
	}

	return client
}

// scoreCandidates fills matchPercentage via the configured AI provider.
// It is optional and never aborts the pipeline: per-candidate failures
// degrade to a warning and the score stays at zero.
func scoreCandidates(ctx context.Context, config *MatchConfig, candidates *cvibes.Candidates, logger *zap.Logger) {
	if config == nil || !config.Enabled {
		return
	}

	vacancy, err := secrets.Load(secrets.Source{
		Name: "vacancy description",
		File: config.VacancyFile,
	})
	if err != nil {
		logger.Warn("skipping match scoring", zap.Error(err))
		return
	}

	matcher, err := newMatcher(ctx, config, logger)
	if err != nil {
		logger.Warn("skipping match scoring", zap.Error(err))
		return
	}

	for _, candidate := range candidates.Items {
		assessment, err := matcher.Evaluate(ctx, vacancy, candidate)
		if err != nil {
			logger.Warn("match scoring failed",
				zap.String("candidate_id", candidate.ID),
				zap.Error(err),
			)
			continue
		}

		candidate.MatchPercentage = assessment.Score
		logger.Info("scored candidate",
			zap.String("candidate_id", candidate.ID),
			zap.Float64("match_percentage", assessment.Score),
			zap.String("reason", assessment.Reason),
		)
	}
}

func newMatcher(ctx context.Context, config *MatchConfig, logger *zap.Logger) (ai.Matcher, error) {
	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported match provider: %s", config.Provider)
	}

	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when match scoring is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set match.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", config.Gemini.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewMatcher(generator, config.Gemini.MaxLogLength, genLogger), nil
}
