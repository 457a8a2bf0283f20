// Command hms is the console entry point of the hospital
// administration system. Every invocation opens the CSV-backed stores
// from the configured data directory, performs one operation, and
// exits; the files themselves are the persistent state.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carewise/hms/internal/hospital"
	"github.com/carewise/hms/pkg/config"
	"github.com/carewise/hms/pkg/logger"
)

var version = "0.1.0"

var (
	configFile string
	dataDir    string
	logLevel   string
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "hms",
		Short: "HMS - CSV-backed hospital administration system",
		Long: `HMS manages patients, staff, appointments, medicine inventory,
prescriptions, invoices and notifications for a single hospital,
persisting everything in plain CSV files.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the CSV data files")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("HMS v%s\n", version)
		},
	})

	root.AddCommand(
		newLoginCmd(),
		newPasswdCmd(),
		newPatientCmd(),
		newStaffCmd(),
		newAppointmentCmd(),
		newMedicineCmd(),
		newPrescriptionCmd(),
		newInvoiceCmd(),
		newRequestCmd(),
		newNotificationCmd(),
		newUnavailableCmd(),
		newExportCmd(),
		newMetricsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, the optional YAML file (after ${VAR}
// environment substitution), HMS_* environment variables, and
// command-line flags, in increasing precedence.
func loadConfig() (*config.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := config.Default()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("billing.tax_rate", def.Billing.TaxRate)
	v.SetDefault("billing.service_fees", def.Billing.ServiceFees)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.encoding", def.Logging.Encoding)

	if configFile != "" {
		raw, err := config.ReadExpanded(configFile)
		if err != nil {
			return nil, err
		}
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// openHospital loads configuration, initializes logging, and opens all
// stores. Called at the top of every command that touches data.
func openHospital() (*hospital.Hospital, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Encoding:    cfg.Logging.Encoding,
		Development: cfg.Logging.Development,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	h, err := hospital.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open hospital data: %w", err)
	}
	return h, nil
}
