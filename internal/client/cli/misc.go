package cli

import (
	"context"
	"fmt"

	"github.com/inkpress/inkcli/internal/client/models"
)

func (a *App) contact(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	email, err := GetSimpleText(a.reader, "Your email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	message, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	result, err := a.api.SubmitContact(ctx, models.ContactRequest{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		a.printErr(err)
		return
	}

	if result.Message != "" {
		fmt.Fprintln(a.out, result.Message)
	} else {
		fmt.Fprintln(a.out, "Message sent")
	}
}

func (a *App) health(ctx context.Context) {
	status, err := a.api.HealthCheck(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Backend status: %s\n", status.Status)
}
