package cli

import (
	"context"
	"fmt"
)

func (a *App) like(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: like <id>")
		return
	}

	result, err := a.api.ToggleLike(ctx, args[0])
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Likes: %d\n", result.LikesCount)
}

func (a *App) comment(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: comment <id>")
		return
	}

	content, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	if _, err := a.api.AddComment(ctx, args[0], content); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Comment added")
}

func (a *App) rmComment(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: rmcomment <id> <commentId>")
		return
	}

	if _, err := a.api.DeleteComment(ctx, args[0], args[1]); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Comment deleted")
}
