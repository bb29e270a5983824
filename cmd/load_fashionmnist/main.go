package main

import "context"
import "fmt"
import "io"
import "os"
import "os/signal"
import "path/filepath"
import "strings"
import "syscall"
import "unicode"

import "github.com/magneticio/go-common/logging"
import homedir "github.com/mitchellh/go-homedir"
import "github.com/pkg/errors"
import "github.com/spf13/cobra"
import "github.com/spf13/viper"

import "github.com/neurlang/fashionmnist/datasets/fashionmnist"
import "github.com/neurlang/fashionmnist/datasets/mnist"
import "github.com/neurlang/fashionmnist/datasets/vision"
import "github.com/neurlang/fashionmnist/version"

var cfgFile string
var pgo bool

var variants = map[string]*vision.Variant{
	"fashionmnist": fashionmnist.Variant,
	"mnist":        mnist.Variant,
}

var rootCmd = &cobra.Command{
	Use:   "load_fashionmnist",
	Short: "Download and load the FashionMNIST dataset",
	Long: `Prints version information and loads the FashionMNIST train set:
  load_fashionmnist
  load_fashionmnist --root ~/datasets --train=false
  load_fashionmnist --dataset mnist
  `,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pgo {
			defer startProfile("default.pgo")()
		}
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:           "version",
	Short:         "Print the versions of the software loading the dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Collect())
	},
}

func init() {
	logging.Init(os.Stdout, os.Stderr)

	cobra.OnInitialize(initConfig)

	var flags = rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fashionmnist/config.yaml)")
	flags.BoolVarP(&logging.Verbose, "verbose", "v", false, "Verbose output")
	flags.String("root", vision.DefaultRoot, "directory the dataset is stored in")
	flags.Bool("train", true, "load the train split, the test split otherwise")
	flags.Bool("download", true, "download the dataset when it is missing")
	flags.String("dataset", "fashionmnist", "dataset to load: fashionmnist or mnist")
	flags.StringSlice("mirrors", nil, "mirrors to download from instead of the default ones")
	flags.Int("threads", 0, "goroutines used to decode the dataset (default one per CPU)")
	rootCmd.Flags().BoolVar(&pgo, "pgo", false, "write a CPU profile to default.pgo")

	for _, key := range []string{"root", "train", "download", "dataset", "mirrors", "threads"} {
		viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("fashionmnist")
	viper.BindEnv("config", "FASHIONMNIST_CONFIG")

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.AutomaticEnv()
	if cfgFile == "" {
		cfgFile = viper.GetString("config")
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logging.Error("Can not find home Directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".fashionmnist"))
		viper.SetConfigName("config")
	}
	if err := viper.ReadInConfig(); err == nil {
		logging.Info("Using config file: %v\n", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logging.Error("Config can not be read due to error: %v\n", err)
	}
}

func options() vision.Options {
	return vision.Options{
		Root:     viper.GetString("root"),
		Train:    viper.GetBool("train"),
		Download: viper.GetBool("download"),
		Mirrors:  mirrors(viper.GetStringSlice("mirrors")),
		Threads:  viper.GetInt("threads"),
	}
}

// mirrors splits entries on commas too, the environment only splits on whitespace
func mirrors(values []string) (out []string) {
	for _, v := range values {
		out = append(out, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return
}

func variant(name string) (*vision.Variant, error) {
	v, ok := variants[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown dataset '%s'", name)
	}
	return v, nil
}

func run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, version.Collect())

	v, err := variant(viper.GetString("dataset"))
	if err != nil {
		return err
	}
	data, err := vision.Load(ctx, options(), v)
	if err != nil {
		return errors.Wrapf(err, "cannot load %s", v.Name)
	}
	fmt.Fprintln(out, data)
	var counts = data.Counts()
	for label := range v.Classes {
		fmt.Fprintf(out, "    %-12s %d\n", data.ClassName(byte(label)), counts[byte(label)])
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error("%v\n", err)
		stop()
		os.Exit(1)
	}
}
