package cli

import (
	"context"
	"fmt"

	"github.com/inkpress/inkcli/internal/client/models"
)

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	resp, err := a.api.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.printErr(err)
		return
	}

	if resp.User != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", resp.User.Name)
	} else {
		fmt.Fprintln(a.out, "Login successful")
	}
}

func (a *App) Register(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	resp, err := a.api.Register(ctx, models.RegisterRequest{
		Name:     name,
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		a.printErr(err)
		return
	}

	if resp.Token != "" {
		fmt.Fprintf(a.out, "Account created, you are now logged in as %s\n", username)
	} else {
		fmt.Fprintln(a.out, "Account created")
	}
}

func (a *App) admin(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	bio, err := GetSimpleText(a.reader, "Bio (optional)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	result, err := a.api.CreateAdmin(ctx, models.AdminRequest{
		Name:     name,
		Email:    email,
		Username: username,
		Password: password,
		Bio:      bio,
	})
	if err != nil {
		a.printErr(err)
		return
	}

	created := result.Username
	if created == "" {
		created = username
	}
	fmt.Fprintf(a.out, "Admin %s created successfully\n", created)
}

func (a *App) Logout(ctx context.Context) {
	a.api.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) WhoAmI(ctx context.Context) {
	st := a.session.CheckAuthStatus(ctx)
	if !st.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (@%s)", st.User.Name, st.User.Username)
	if st.User.Role != "" {
		fmt.Fprintf(a.out, " [%s]", st.User.Role)
	}
	fmt.Fprintln(a.out)
}
