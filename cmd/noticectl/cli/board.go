package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/notice-board/internal/board"
	"github.com/spec-kit/notice-board/internal/client"
)

type listFlags struct {
	department string
	date       string
	search     string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.department, "department", "d", "all", "department filter, \"all\" for every department")
	cmd.Flags().StringVar(&f.date, "date", "", "only notices dated YYYY-MM-DD")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search titles and content")
}

func (f *listFlags) filter() client.Filter {
	return client.Filter{Department: f.department, Date: f.date}
}

func (c *cli) newBoardCmd() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the public notice board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := board.NewSession()
			if err := session.OpenStudentView(); err != nil {
				return err
			}
			ctrl := board.NewController(c.client(""), c.logger)
			if err := ctrl.SetFilter(cmd.Context(), flags.filter()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "College Notice Board")
			fmt.Fprintln(c.out)
			return c.render(ctrl, flags.search, false)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) newDashboardCmd() *cobra.Command {
	var (
		flags   listFlags
		preview bool
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, api, err := c.adminSession()
			if err != nil {
				return err
			}
			if preview {
				if err := session.TogglePreview(); err != nil {
					return err
				}
			}
			ctrl := board.NewController(api, c.logger)
			if err := ctrl.SetFilter(cmd.Context(), flags.filter()); err != nil {
				return c.checkAuth(err)
			}

			if session.Previewing() {
				fmt.Fprintln(c.out, "College Notice Board (student preview)")
			} else {
				fmt.Fprintf(c.out, "Admin Dashboard | Welcome, %s\n", session.Admin().Name)
			}
			fmt.Fprintln(c.out)
			return c.render(ctrl, flags.search, !session.Previewing())
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&preview, "preview", false, "render the board as students see it")
	return cmd
}

func (c *cli) render(ctrl *board.Controller, search string, admin bool) error {
	if err := board.RenderStats(c.out, board.ComputeStats(ctrl.Notices(), c.now()), admin); err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return board.RenderNotices(c.out, ctrl.Visible(search), admin)
}

func (c *cli) newDepartmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List the departments a notice may target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			departments, err := c.client("").Departments(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range departments {
				fmt.Fprintln(c.out, d)
			}
			return nil
		},
	}
}
