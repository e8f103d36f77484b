package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/policywave/policywave/internal/agent"
	"github.com/policywave/policywave/internal/calculation"
	"github.com/policywave/policywave/internal/compare"
	"github.com/policywave/policywave/internal/config"
	"github.com/policywave/policywave/internal/domain"
	"github.com/policywave/policywave/internal/ondemand"
	"github.com/policywave/policywave/internal/output"
)

// simpleCLILogger implements agent.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "policywave %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "policywave",
	Short: "PolicyWave policy simulation and tax calculator CLI",
	Long:  "Income tax computation for Indian FY 2025-26 and AI-assisted policy impact simulation",
}

var taxCmd = &cobra.Command{
	Use:   "tax [profile-file]",
	Short: "Calculate income tax for a single regime",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		profile, err := parser.LoadTaxProfile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		result := calculation.CalculateIncomeTax(*profile)

		outputFormat, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.WriteTaxReport(&result, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [profile-file]",
	Short: "Compare old and new regime liability for the same profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		profile, err := parser.LoadTaxProfile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		comparison := compare.CompareRegimes(profile.GrossIncome, profile.Deductions, profile.Age)

		outputFormat, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.WriteComparisonReport(&comparison, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [request-file]",
	Short: "Run a policy impact simulation through the policy agent",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAgentRequest(cmd, args[0], "")
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [request-file]",
	Short: "Explain a policy topic through the policy agent",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAgentRequest(cmd, args[0], domain.ModeExplanation)
	},
}

// runAgentRequest loads a request file, wires the agent, and renders the
// report. forceMode overrides the file's mode when non-empty.
func runAgentRequest(cmd *cobra.Command, requestFile string, forceMode domain.SimulationMode) {
	parser := config.NewInputParser()
	request, err := parser.LoadSimulationRequest(requestFile)
	if err != nil {
		log.Fatal(err)
	}
	if forceMode != "" {
		request.Mode = forceMode
	}
	if role, _ := cmd.Flags().GetString("role"); role != "" {
		request.UserRole = domain.UserRole(role)
		if !request.UserRole.IsValid() {
			log.Fatalf("unknown role %q (valid: government, citizen, expert)", role)
		}
	}

	client, err := buildClient(cmd)
	if err != nil {
		log.Fatal(err)
	}

	policyAgent := agent.NewPolicyAgent(client)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		policyAgent.SetLogger(simpleCLILogger{})
	}

	result, err := policyAgent.RunSimulation(context.Background(), *request)
	if err != nil {
		log.Fatal(err)
	}

	outputFormat, _ := cmd.Flags().GetString("format")
	rg := output.NewReportGenerator(os.Stdout)
	if err := rg.WriteSimulationReport(result, outputFormat); err != nil {
		log.Fatal(err)
	}
}

// buildClient assembles the on-demand client from the --config file when
// given, otherwise from the ONDEMAND_* environment. Credentials are read
// here at the boundary; the agent itself never touches the environment.
func buildClient(cmd *cobra.Command) (*ondemand.Client, error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		agentCfg, err := config.NewInputParser().LoadAgentConfig(configFile)
		if err != nil {
			return nil, err
		}
		return ondemand.NewClient(agentCfg.ClientConfig())
	}

	apiKey := os.Getenv("ONDEMAND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("no agent config: pass --config or set ONDEMAND_API_KEY")
	}
	return ondemand.NewClient(ondemand.Config{
		APIKey:     apiKey,
		BaseURL:    os.Getenv("ONDEMAND_BASE_URL"),
		EndpointID: os.Getenv("ONDEMAND_ENDPOINT_ID"),
	})
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the built-in policy domain catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range domain.PolicyDomains() {
			fmt.Printf("%-20s %s\n", d.Slug, d.Name)
			fmt.Printf("%-20s %s\n", "", d.Description)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file without running anything",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("kind")
		parser := config.NewInputParser()

		var err error
		switch kind {
		case "profile":
			_, err = parser.LoadTaxProfile(args[0])
		case "request":
			_, err = parser.LoadSimulationRequest(args[0])
		case "agent":
			_, err = parser.LoadAgentConfig(args[0])
		default:
			log.Fatalf("unknown kind %q (valid: profile, request, agent)", kind)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s is a valid %s file\n", args[0], kind)
	},
}

func init() {
	taxCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")

	for _, c := range []*cobra.Command{simulateCmd, explainCmd} {
		c.Flags().StringP("format", "f", "console", "Output format (console, json)")
		c.Flags().StringP("config", "c", "", "Path to agent config file (default: ONDEMAND_* environment)")
		c.Flags().String("role", "", "Override the request's audience role (government, citizen, expert)")
		c.Flags().Bool("debug", false, "Enable debug output for agent steps")
	}

	validateCmd.Flags().StringP("kind", "k", "profile", "Input kind (profile, request, agent)")

	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
