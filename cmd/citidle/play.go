package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnnaReese/Citidle/internal/cli"
	"github.com/AnnaReese/Citidle/internal/config"
)

func newPlayCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play today's game in the terminal.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, v)
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			return cli.New(engine, os.Stdin, cmd.OutOrStdout()).Run()
		},
	}
}
