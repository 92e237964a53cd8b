package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/notice-board/internal/board"
	"github.com/spec-kit/notice-board/internal/client"
)

func (c *cli) newNoticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notice",
		Short: "Create, edit and delete notices",
	}
	cmd.AddCommand(c.newNoticeCreateCmd())
	cmd.AddCommand(c.newNoticeEditCmd())
	cmd.AddCommand(c.newNoticeDeleteCmd())
	return cmd
}

type noticeFlags struct {
	input client.NoticeInput
}

func (f *noticeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input.Title, "title", "t", "", "notice title")
	cmd.Flags().StringVarP(&f.input.Content, "content", "c", "", "notice body")
	cmd.Flags().StringVarP(&f.input.Department, "department", "d", "", "target department")
	cmd.Flags().StringVar(&f.input.Date, "date", "", "effective date, YYYY-MM-DD")
}

// apply copies only the flags the user actually set.
func (f *noticeFlags) apply(cmd *cobra.Command, draft *client.NoticeInput) {
	changed := cmd.Flags().Changed
	if changed("title") {
		draft.Title = f.input.Title
	}
	if changed("content") {
		draft.Content = f.input.Content
	}
	if changed("department") {
		draft.Department = f.input.Department
	}
	if changed("date") {
		draft.Date = f.input.Date
	}
}

func (c *cli) newNoticeCreateCmd() *cobra.Command {
	var flags noticeFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new notice",
		Example: `  noticectl notice create --title "Mid-Semester Exams" \
    --content "Timetables are on the portal." --department "Computer Science"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, api, err := c.adminSession()
			if err != nil {
				return err
			}

			var form board.Form
			form.OpenCreate(c.now())
			form.Update(func(draft *client.NoticeInput) { flags.apply(cmd, draft) })

			ctrl := board.NewController(api, c.logger)
			if err := ctrl.Save(cmd.Context(), &form); err != nil {
				return c.checkAuth(err)
			}
			fmt.Fprintln(c.out, "Notice created successfully.")
			return board.RenderNotices(c.out, ctrl.Notices()[:1], true)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) newNoticeEditCmd() *cobra.Command {
	var flags noticeFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, api, err := c.adminSession()
			if err != nil {
				return err
			}

			ctrl := board.NewController(api, c.logger)
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}
			current, ok := find(ctrl.Notices(), id)
			if !ok {
				return fmt.Errorf("notice %d not found", id)
			}

			var form board.Form
			form.OpenEdit(current)
			form.Update(func(draft *client.NoticeInput) { flags.apply(cmd, draft) })
			if err := ctrl.Save(cmd.Context(), &form); err != nil {
				return c.checkAuth(err)
			}

			fmt.Fprintln(c.out, "Notice updated successfully.")
			if updated, ok := find(ctrl.Notices(), id); ok {
				return board.RenderNotices(c.out, []client.Notice{updated}, true)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) newNoticeDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, api, err := c.adminSession()
			if err != nil {
				return err
			}
			if !yes {
				ok, err := c.confirm("Are you sure you want to delete this notice?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(c.out, "Cancelled.")
					return nil
				}
			}

			ctrl := board.NewController(api, c.logger)
			if err := ctrl.Delete(cmd.Context(), id); err != nil {
				return c.checkAuth(err)
			}
			fmt.Fprintln(c.out, "Notice deleted successfully.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid notice id %q", raw)
	}
	return id, nil
}

func find(notices []client.Notice, id int64) (client.Notice, bool) {
	for _, n := range notices {
		if n.ID == id {
			return n, true
		}
	}
	return client.Notice{}, false
}
