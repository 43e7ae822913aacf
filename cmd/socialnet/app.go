// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/dataset"
	"github.com/katalvlaran/socialgraph/network"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	in  io.Reader
	out io.Writer

	configPath string
	dataPath   string

	log     *zap.Logger
	metrics *network.Metrics
	net     *network.Network
}

// newRootCmd assembles the command tree reading from in and writing to out.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "socialnet",
		Short:         "Explore a social network: friends, follows, posts and graph analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML configuration")
	root.PersistentFlags().StringVar(&a.dataPath, "data", "", "path to YAML dataset")

	root.AddCommand(
		a.usersCmd(),
		a.showCmd(),
		a.friendsCmd(),
		a.postsCmd(),
		a.mutualCmd(),
		a.suggestCmd(),
		a.centralityCmd(),
		a.shellCmd(),
	)

	return root
}

// setup loads configuration, builds logger, metrics and network, and seeds
// the network from the dataset when one is given.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.log, err = config.NewLogger(cfg.Log); err != nil {
		return err
	}
	a.metrics = network.NewMetrics(cfg.Metrics.Namespace)

	opts := append(cfg.NetworkOptions(), network.WithLogger(a.log), network.WithMetrics(a.metrics))
	if a.net, err = network.New(opts...); err != nil {
		return err
	}

	if a.dataPath == "" {
		return nil
	}
	ds, err := dataset.Load(a.dataPath)
	if err != nil {
		return err
	}
	if err := ds.Apply(a.net); err != nil {
		return err
	}
	a.log.Info("dataset loaded", zap.String("path", a.dataPath), zap.Int("users", len(a.net.Users())))

	return nil
}
