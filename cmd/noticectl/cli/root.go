// Package cli implements the noticectl command tree: the student board, the
// admin dashboard and out-of-band administrator provisioning.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/client"
)

const defaultServer = "http://localhost:9001"

type cli struct {
	v       *viper.Viper
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	lines   *bufio.Reader
	logger  *zap.Logger
	now     func() time.Time
	cfgFile string
	verbose bool
}

// Execute runs noticectl against the process's standard streams.
func Execute(version string) error {
	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		return err
	}
	return nil
}

// NewRootCmd builds the command tree bound to the given streams.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{
		v:      viper.New(),
		in:     in,
		out:    out,
		errOut: errOut,
		lines:  bufio.NewReader(in),
		logger: zap.NewNop(),
		now:    time.Now,
	}

	cmd := &cobra.Command{
		Use:   "noticectl",
		Short: "College notice board client",
		Long: `noticectl reads the college notice board and, for administrators,
publishes, edits and removes notices.

Students use "noticectl board". Administrators log in once with
"noticectl login" and then manage notices from "noticectl dashboard".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initConfig()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ./noticectl.yaml or ~/.noticectl/noticectl.yaml)")
	flags.String("server", defaultServer, "notice board API base URL")
	flags.String("session", "", "session file (default is ~/.noticectl/session.json)")
	flags.Duration("timeout", 10*time.Second, "per-request timeout")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log diagnostics to stderr")
	_ = c.v.BindPFlag("server", flags.Lookup("server"))
	_ = c.v.BindPFlag("session_file", flags.Lookup("session"))
	_ = c.v.BindPFlag("timeout", flags.Lookup("timeout"))

	cmd.AddCommand(c.newBoardCmd())
	cmd.AddCommand(c.newDashboardCmd())
	cmd.AddCommand(c.newLoginCmd())
	cmd.AddCommand(c.newLogoutCmd())
	cmd.AddCommand(c.newNoticeCmd())
	cmd.AddCommand(c.newDepartmentsCmd())
	cmd.AddCommand(c.newAdminCmd())
	cmd.AddCommand(c.newMigrateCmd())

	return cmd
}

func (c *cli) initConfig() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.SetConfigName("noticectl")
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
		c.v.AddConfigPath("$HOME/.noticectl")
	}
	c.v.SetEnvPrefix("NOTICECTL")
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if c.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		c.logger = logger
	}
	return nil
}

func (c *cli) server() string {
	if s := c.v.GetString("server"); s != "" {
		return s
	}
	return defaultServer
}

func (c *cli) sessionPath() string {
	if p := c.v.GetString("session_file"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".noticectl", "session.json")
	}
	return filepath.Join(home, ".noticectl", "session.json")
}

func (c *cli) client(token string) *client.Client {
	opts := []client.Option{client.WithToken(token)}
	if d := c.v.GetDuration("timeout"); d > 0 {
		opts = append(opts, client.WithTimeout(d))
	}
	return client.New(c.server(), opts...)
}
