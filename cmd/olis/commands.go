package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalambet/olis/internal/config"
	"github.com/kalambet/olis/internal/dashboard"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/scoring"
	"github.com/kalambet/olis/internal/voice"
)

// --- status ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server, onboarding and score status",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		cfg, err := config.Load()
		if err != nil {
			// Still show partial status even if config fails.
			printError("config error: %v", err)
			return nil
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/health")
		if err != nil {
			printStatus(w, "Server", "stopped")
			printStatus(w, "Data dir", "%s", cfg.Storage.DataDir)
			return nil
		}
		var health struct {
			Status      string  `json:"status"`
			Uptime      float64 `json:"uptime"`
			Environment string  `json:"environment"`
			Version     string  `json:"version"`
			Error       string  `json:"error"`
		}
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
			return fmt.Errorf("decoding health: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			printStatus(w, "Server", "%s (%s)", health.Status, health.Error)
			return nil
		}
		printStatus(w, "Server", "running on port %d (%s, %s)", cfg.Server.Port, health.Environment, health.Version)
		printStatus(w, "Uptime", "%.0fs", health.Uptime)

		var ov dashboard.Overview
		dresp, err := client.get(cmd.Context(), "/dashboard")
		if err != nil {
			return err
		}
		if err := decodeJSON(dresp, &ov); err != nil {
			return err
		}
		printStatus(w, "Onboarding", "%s", onboardingLabel(ov.OnboardingComplete))
		printStatus(w, "Score", "%d/100 (%s)", ov.Score, ov.Band.Label)
		printStatus(w, "Posts", "%d (%d featured)", ov.Stats.TotalPosts, ov.Stats.FeaturedCount)
		printStatus(w, "Voice", "%s", voiceLabel(ov.Voice))
		printStatus(w, "Data dir", "%s", cfg.Storage.DataDir)
		return nil
	},
}

func onboardingLabel(complete bool) string {
	if complete {
		return "complete"
	}
	return "in progress"
}

func voiceLabel(v dashboard.VoiceStatus) string {
	switch {
	case v.Approved:
		return fmt.Sprintf("approved (%s)", v.ToneName)
	case v.Generated:
		return fmt.Sprintf("generated, awaiting approval (%s)", v.ToneName)
	default:
		return fmt.Sprintf("step %d of %d", v.Step, voice.TotalSteps)
	}
}

// --- onboarding ---

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Inspect or drive the onboarding flow",
}

// onboardingResult prints the state returned by an onboarding call. A
// finished flow redirects to the dashboard, which the client follows.
func onboardingResult(w io.Writer, resp *http.Response) error {
	if resp.StatusCode < 400 && strings.HasSuffix(resp.Request.URL.Path, "/dashboard") {
		resp.Body.Close()
		printSuccess("Onboarding complete, run `olis dashboard`")
		return nil
	}
	var st onboarding.State
	if err := decodeJSON(resp, &st); err != nil {
		return err
	}
	renderOnboarding(w, st)
	return nil
}

var onboardingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current onboarding step",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.get(cmd.Context(), "/onboarding")
		if err != nil {
			return err
		}
		return onboardingResult(cmd.OutOrStdout(), resp)
	},
}

var onboardingSkipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip the welcome carousel",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/onboarding/welcome/skip", nil)
		if err != nil {
			return err
		}
		return onboardingResult(cmd.OutOrStdout(), resp)
	},
}

var onboardingAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Move to the next onboarding step",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/onboarding/advance", nil)
		if err != nil {
			return err
		}
		return onboardingResult(cmd.OutOrStdout(), resp)
	},
}

var onboardingConsentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Confirm the reviewed data on the confirmation step",
	RunE: func(cmd *cobra.Command, args []string) error {
		revoke, _ := cmd.Flags().GetBool("revoke")
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/onboarding/consent", map[string]bool{"consent": !revoke})
		if err != nil {
			return err
		}
		return onboardingResult(cmd.OutOrStdout(), resp)
	},
}

var onboardingAttachCmd = &cobra.Command{
	Use:   "attach <file.pdf>",
	Short: "Upload the LinkedIn profile PDF on the profile-setup step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.upload(cmd.Context(), "/onboarding/attachment", filepath.Base(args[0]), data)
		if err != nil {
			return err
		}
		return onboardingResult(cmd.OutOrStdout(), resp)
	},
}

var onboardingEditCmd = &cobra.Command{
	Use:       "edit profile|posts",
	Short:     "Go back from the confirmation step to edit the profile or posts",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"profile", "posts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/onboarding/edit/"+args[0], nil)
		if err != nil {
			return err
		}
		return onboardingResult(cmd.OutOrStdout(), resp)
	},
}

func init() {
	onboardingConsentCmd.Flags().Bool("revoke", false, "withdraw consent")
	onboardingCmd.AddCommand(onboardingShowCmd)
	onboardingCmd.AddCommand(onboardingSkipCmd)
	onboardingCmd.AddCommand(onboardingAttachCmd)
	onboardingCmd.AddCommand(onboardingAdvanceCmd)
	onboardingCmd.AddCommand(onboardingConsentCmd)
	onboardingCmd.AddCommand(onboardingEditCmd)
}

func renderOnboarding(w io.Writer, st onboarding.State) {
	if st.Complete {
		printStatus(w, "Onboarding", "complete")
		return
	}
	printStatus(w, "Step", "%s (%d of %d)", st.Step, st.StepIndex+1, len(onboarding.Steps))
	if st.Step == onboarding.StepWelcome {
		printStatus(w, "Welcome page", "%d of %d", st.WelcomePage+1, st.WelcomePages)
	}
	next := st.AdvanceLabel
	if next == "" {
		next = "Continue"
	}
	if st.CanAdvance {
		printStatus(w, "Next", "%s", next)
	} else {
		printStatus(w, "Next", "%s (blocked)", next)
	}
	if st.Step == onboarding.StepConfirmation {
		printStatus(w, "Consent", "%t", st.Consent)
	}
	printStatus(w, "Name", "%s", st.Profile.DisplayName())
	printStatus(w, "Headline", "%s", st.Profile.Headline)
	printStatus(w, "Attachment", "%s", st.Profile.AttachmentName)
	printStatus(w, "Posts", "%d", len(st.Posts))
}

// --- dashboard ---

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the profile score, content stats and suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.get(cmd.Context(), "/dashboard")
		if err != nil {
			return err
		}
		var ov dashboard.Overview
		if err := decodeJSON(resp, &ov); err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), ov)
		}
		renderOverview(cmd.OutOrStdout(), ov)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().Bool("json", false, "print the raw overview as JSON")
}

func renderOverview(w io.Writer, ov dashboard.Overview) {
	name := ov.DisplayName
	if name == "" {
		name = "(no name yet)"
	}
	fmt.Fprintln(w, colorize(colorBold, name))
	if ov.Profile.Headline != "" {
		fmt.Fprintf(w, "%s\n", ov.Profile.Headline)
	}

	printHeading(w, "Profile strength")
	printStatus(w, "Score", "%d/100", ov.Score)
	printStatus(w, "Band", "%s (%s)", ov.Band.Label, ov.Band.Tier)

	printHeading(w, "Content")
	printStatus(w, "Posts", "%d", ov.Stats.TotalPosts)
	printStatus(w, "Featured", "%d", ov.Stats.FeaturedCount)
	printStatus(w, "Average length", "%d", ov.Stats.AvgLength)
	printStatus(w, "Long-form / short-form", "%d / %d", ov.Stats.LongFormCount, ov.Stats.ShortFormCount)
	printStatus(w, "Data quality", "%s", ov.Stats.DataQuality)

	printHeading(w, "Headline ideas")
	printItems(w, "→", colorCyan, ov.HeadlineSuggestions)

	printHeading(w, "About ideas")
	printItems(w, "→", colorCyan, ov.AboutSuggestions)

	printHeading(w, "Voice")
	printStatus(w, "Status", "%s", voiceLabel(ov.Voice))
}

// --- analyze ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Get rule-based feedback on a post draft",
	Long: `Get rule-based feedback on a post draft.

Examples:
  olis analyze "Three things I learned shipping our first release?"
  olis analyze --file ./draft.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content := strings.Join(args, " ")
		if file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			content = string(data)
		}
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("post text or --file is required")
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/analyze", map[string]string{"content": content})
		if err != nil {
			return err
		}
		var a scoring.Analysis
		if err := decodeJSON(resp, &a); err != nil {
			return err
		}
		renderAnalysis(cmd.OutOrStdout(), a)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("file", "", "read the draft from a file")
}

func renderAnalysis(w io.Writer, a scoring.Analysis) {
	printStatus(w, "Score", "%d/100", a.Score)
	printHeading(w, "Strengths")
	printItems(w, "✓", colorGreen, a.Strengths)
	printHeading(w, "Improvements")
	printItems(w, "→", colorYellow, a.Improvements)
}

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the stored profile",
}

var profileStringFields = []string{
	"name", "fullName", "linkedinUrl", "headline", "summary", "location", "industry",
	"currentPosition", "currentCompany", "email", "phone", "website",
}

var profileListFields = []string{"skills", "languages", "certifications"}

// profilePatchBody turns a key/value pair into a PATCH body. List fields take
// a comma-separated value.
func profilePatchBody(key, value string) (map[string]any, error) {
	switch {
	case slices.Contains(profileStringFields, key):
		return map[string]any{key: value}, nil
	case slices.Contains(profileListFields, key):
		items := []string{}
		for _, it := range strings.Split(value, ",") {
			if it = strings.TrimSpace(it); it != "" {
				items = append(items, it)
			}
		}
		return map[string]any{key: items}, nil
	default:
		return nil, fmt.Errorf("unknown profile field %q (valid: %s)", key,
			strings.Join(append(slices.Clone(profileStringFields), profileListFields...), ", "))
	}
}

func fetchProfile(cmd *cobra.Command, client *apiClient) (profile.Profile, error) {
	resp, err := client.get(cmd.Context(), "/dashboard")
	if err != nil {
		return profile.Profile{}, err
	}
	var ov dashboard.Overview
	if err := decodeJSON(resp, &ov); err != nil {
		return profile.Profile{}, err
	}
	return ov.Profile, nil
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := fetchProfile(cmd, client)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), p)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a profile field",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		body, err := profilePatchBody(key, value)
		if err != nil {
			return err
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.patch(cmd.Context(), "/profile", body)
		if err != nil {
			return err
		}
		if err := decodeJSON(resp, nil); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the profile JSON in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := fetchProfile(cmd, client)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}

		tmpFile, err := os.CreateTemp("", "olis-profile-*.json")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		tmpPath := tmpFile.Name()
		defer os.Remove(tmpPath)

		if _, err := tmpFile.Write(data); err != nil {
			tmpFile.Close()
			return err
		}
		tmpFile.Close()

		editorCmd := exec.Command(editor, tmpPath)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr
		if err := editorCmd.Run(); err != nil {
			return fmt.Errorf("editor exited with error: %w", err)
		}

		edited, err := os.ReadFile(tmpPath)
		if err != nil {
			return err
		}

		var patch profile.Patch
		if err := json.Unmarshal(edited, &patch); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}

		resp, err := client.patch(cmd.Context(), "/profile", patch)
		if err != nil {
			return err
		}
		if err := decodeJSON(resp, nil); err != nil {
			return err
		}

		printSuccess("Profile updated")
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileEditCmd)
}

// --- posts ---

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Manage the post history",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.get(cmd.Context(), "/posts")
		if err != nil {
			return err
		}
		var posts []profile.Post
		if err := decodeJSON(resp, &posts); err != nil {
			return err
		}
		renderPosts(cmd.OutOrStdout(), posts)
		return nil
	},
}

var postsAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		featured, _ := cmd.Flags().GetBool("featured")
		media, _ := cmd.Flags().GetString("media")

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/posts", map[string]any{
			"content":          strings.Join(args, " "),
			"isFeatured":       featured,
			"mediaDescription": media,
		})
		if err != nil {
			return err
		}
		var p profile.Post
		if err := decodeJSON(resp, &p); err != nil {
			return err
		}
		printSuccess("Added post %s", p.ID)
		return nil
	},
}

var postsRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.delete(cmd.Context(), "/posts/"+args[0])
		if err != nil {
			return err
		}
		if err := decodeJSON(resp, nil); err != nil {
			return err
		}
		printSuccess("Removed post %s", args[0])
		return nil
	},
}

var postsFeatureCmd = &cobra.Command{
	Use:   "feature <id>",
	Short: "Toggle the featured flag on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.post(cmd.Context(), "/posts/"+args[0]+"/feature", nil)
		if err != nil {
			return err
		}
		var p profile.Post
		if err := decodeJSON(resp, &p); err != nil {
			return err
		}
		if p.IsFeatured {
			printSuccess("Post %s is featured", p.ID)
		} else {
			printSuccess("Post %s is no longer featured", p.ID)
		}
		return nil
	},
}

func init() {
	postsAddCmd.Flags().Bool("featured", false, "mark the post as featured")
	postsAddCmd.Flags().String("media", "", "describe attached media")
	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsAddCmd)
	postsCmd.AddCommand(postsRemoveCmd)
	postsCmd.AddCommand(postsFeatureCmd)
}

func renderPosts(w io.Writer, posts []profile.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")
		return
	}
	for _, p := range posts {
		star := " "
		if p.IsFeatured {
			star = colorize(colorYellow, "★")
		}
		id := p.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(w, "%s %s  %s\n", star, colorize(colorCyan, id), truncate(p.Content, 80))
	}
}

// --- voice ---

type voiceView struct {
	Config voice.Config     `json:"config"`
	Step   voice.StepInfo   `json:"step"`
	Steps  []voice.StepInfo `json:"steps"`
}

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Inspect or finish the writing voice",
}

func voiceCall(cmd *cobra.Command, method, path string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}
	var resp *http.Response
	switch method {
	case http.MethodGet:
		resp, err = client.get(cmd.Context(), path)
	case http.MethodDelete:
		resp, err = client.delete(cmd.Context(), path)
	default:
		resp, err = client.post(cmd.Context(), path, nil)
	}
	if err != nil {
		return err
	}
	var v voiceView
	if err := decodeJSON(resp, &v); err != nil {
		return err
	}
	renderVoice(cmd.OutOrStdout(), v)
	return nil
}

var voiceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the voice wizard step and generated voice",
	RunE: func(cmd *cobra.Command, args []string) error {
		return voiceCall(cmd, http.MethodGet, "/voice")
	},
}

var voiceGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the voice from the current answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return voiceCall(cmd, http.MethodPost, "/voice/generate")
	},
}

var voiceApproveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve the generated voice",
	RunE: func(cmd *cobra.Command, args []string) error {
		return voiceCall(cmd, http.MethodPost, "/voice/approve")
	},
}

var voiceResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all voice answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			printWarning("This will discard every voice answer. Use --confirm to proceed.")
			return nil
		}
		return voiceCall(cmd, http.MethodDelete, "/voice")
	},
}

func init() {
	voiceResetCmd.Flags().Bool("confirm", false, "confirm the reset")
	voiceCmd.AddCommand(voiceShowCmd)
	voiceCmd.AddCommand(voiceGenerateCmd)
	voiceCmd.AddCommand(voiceApproveCmd)
	voiceCmd.AddCommand(voiceResetCmd)
}

func renderVoice(w io.Writer, v voiceView) {
	printStatus(w, "Step", "%d of %d: %s (%s)", v.Step.Number, voice.TotalSteps, v.Step.Title, v.Step.PartTitle)
	if !v.Config.Generated() {
		printStatus(w, "Voice", "not generated yet")
		return
	}
	state := "awaiting approval"
	if v.Config.Approved {
		state = "approved"
	}
	printStatus(w, "Voice", "%s (%s)", v.Config.ToneName, state)

	printHeading(w, "Manifesto")
	fmt.Fprintf(w, "  %s\n", v.Config.ToneManifesto)
	printHeading(w, "Do")
	printItems(w, "✓", colorGreen, v.Config.DoRules)
	printHeading(w, "Don't")
	printItems(w, "✗", colorRed, v.Config.DontRules)
}

// --- data ---

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage stored data",
}

var dataResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data and restart onboarding",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			printWarning("This will delete ALL stored data. Use --confirm to proceed.")
			return nil
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		resp, err := client.delete(cmd.Context(), "/data")
		if err != nil {
			return err
		}
		if err := decodeJSON(resp, nil); err != nil {
			return err
		}

		printSuccess("All data cleared")
		return nil
	},
}

func init() {
	dataResetCmd.Flags().Bool("confirm", false, "confirm data reset")
	dataCmd.AddCommand(dataResetCmd)
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
