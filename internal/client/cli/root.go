package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if user := a.session.GetCurrentUser(ctx); user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Inkpress CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "inkpress %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help(ctx)

		case "register":
			a.Register(ctx)
		case "admin":
			a.admin(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)

		case "list":
			a.list(ctx, args)
		case "search":
			a.search(ctx, args)
		case "tag":
			a.byTag(ctx, args)
		case "show":
			a.show(ctx, args)

		case "my":
			a.myBlogs(ctx)
		case "stats":
			a.stats(ctx)
		case "create":
			a.create(ctx)
		case "edit":
			a.edit(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "upload":
			a.upload(ctx, args)

		case "like":
			a.like(ctx, args)
		case "comment":
			a.comment(ctx, args)
		case "rmcomment":
			a.rmComment(ctx, args)

		case "profile":
			a.profile(ctx)
		case "setprofile":
			a.setProfile(ctx)

		case "contact":
			a.contact(ctx)
		case "health":
			a.health(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help(ctx context.Context) {
	fmt.Fprintln(a.out, "Browsing: list [page], search <text>, tag <tag>, show <id>, health")
	if a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Writing:  my, stats, create, edit <id>, delete <id>, upload <path>")
		fmt.Fprintln(a.out, "Social:   like <id>, comment <id>, rmcomment <id> <commentId>")
		fmt.Fprintln(a.out, "Account:  whoami, profile, setprofile, logout")
	} else {
		fmt.Fprintln(a.out, "Account:  register, login, admin, contact")
	}
	fmt.Fprintln(a.out, "Other:    help, exit")
}
