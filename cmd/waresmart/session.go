package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/pkg/format"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and store the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "password; read from stdin when omitted",
				EnvVars: []string{"WARESMART_PASSWORD"},
			},
		},
		Action: func(c *cli.Context) error {
			password, err := loginPassword(c)
			if err != nil {
				return err
			}
			return withConsole(c, func(con *console) error {
				id, err := con.sessions.Login(c.Context, c.String("username"), password)
				if err != nil {
					return cli.Exit(domain.UserMessage(err), 1)
				}
				fmt.Fprintf(c.App.Writer, "Đăng nhập thành công: %s (%s)\n", id.DisplayName(), domain.RoleLabel(id.Role))
				return nil
			})
		},
	}
}

// loginPassword prefers --password or WARESMART_PASSWORD and otherwise reads
// one line from stdin, so the secret need not appear in the process list.
func loginPassword(c *cli.Context) (string, error) {
	if p := c.String("password"); p != "" {
		return p, nil
	}
	fmt.Fprint(c.App.ErrWriter, "Mật khẩu: ")
	line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", cli.Exit("Vui lòng nhập mật khẩu.", 1)
	}
	return password, nil
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "clear the stored session",
		Action: func(c *cli.Context) error {
			return withConsole(c, func(con *console) error {
				con.sessions.Logout(c.Context)
				fmt.Fprintln(c.App.Writer, "Đã đăng xuất.")
				return nil
			})
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the stored identity",
		Action: func(c *cli.Context) error {
			return withConsole(c, func(con *console) error {
				s := con.sessions.Session()
				if !s.IsAuthenticated() {
					return cli.Exit("Chưa đăng nhập.", 1)
				}
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", s.Identity.Username, s.Identity.DisplayName(), domain.RoleLabel(s.Identity.Role))
				return nil
			})
		},
	}
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "list users",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "substring of name, username, email or phone"},
		},
		Action: func(c *cli.Context) error {
			return withConsole(c, func(con *console) error {
				if err := requireSession(con); err != nil {
					return err
				}
				list, err := con.users.List(c.Context, c.String("search"))
				if err != nil {
					return cli.Exit(domain.UserMessage(err), 1)
				}

				w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tHỌ TÊN\tTÊN ĐĂNG NHẬP\tEMAIL\tVAI TRÒ\tTRẠNG THÁI")
				for _, u := range list.Users {
					status := "Hoạt động"
					if !u.IsActive {
						status = "Vô hiệu"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.FullName, u.Username, u.Email, u.RoleLabel, status)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if list.FromMock {
					fmt.Fprintln(c.App.ErrWriter, "(dữ liệu mẫu)")
				}
				return nil
			})
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show the dashboard summary",
		Action: func(c *cli.Context) error {
			return withConsole(c, func(con *console) error {
				if err := requireSession(con); err != nil {
					return err
				}
				view, err := con.dashboard.Overview(c.Context, "7d")
				if err != nil {
					return cli.Exit(domain.UserMessage(err), 1)
				}

				w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "Tổng tồn kho\t%s\n", format.Number(view.Stats.TotalInventory))
				fmt.Fprintf(w, "Sắp hết hàng\t%s\n", format.Number(view.Stats.LowStockCount))
				fmt.Fprintf(w, "Nhập hôm nay\t%s\n", format.Number(view.Stats.TodayImport))
				fmt.Fprintf(w, "Xuất hôm nay\t%s\n", format.Number(view.Stats.TodayExport))
				for _, p := range view.TopProducts {
					fmt.Fprintf(w, "%s\t%s\t%s\n", p.SKU, p.Name, format.Currency(p.Revenue))
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if view.FromMock {
					fmt.Fprintln(c.App.ErrWriter, "(dữ liệu mẫu)")
				}
				return nil
			})
		},
	}
}

// requireSession mirrors the console's protected guard for CLI reads.
func requireSession(con *console) error {
	if !con.sessions.Session().IsAuthenticated() {
		return cli.Exit("Chưa đăng nhập. Chạy `waresmart login` trước.", 1)
	}
	return nil
}
