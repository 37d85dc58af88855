package cli

import (
	"context"
	"fmt"

	"github.com/inkpress/inkcli/internal/client/models"
)

func (a *App) profile(ctx context.Context) {
	user, err := a.api.GetProfile(ctx)
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "%s (@%s)\n", user.Name, user.Username)
	if user.Email != "" {
		fmt.Fprintf(a.out, "email:    %s\n", user.Email)
	}
	if user.Bio != "" {
		fmt.Fprintf(a.out, "bio:      %s\n", user.Bio)
	}
	if user.Location != "" {
		fmt.Fprintf(a.out, "location: %s\n", user.Location)
	}
	if user.Phone != "" {
		fmt.Fprintf(a.out, "phone:    %s\n", user.Phone)
	}
}

func (a *App) setProfile(ctx context.Context) {
	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")

	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	bio, err := GetSimpleText(a.reader, "Bio", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	user, err := a.api.UpdateProfile(ctx, models.ProfileUpdate{
		Name:     name,
		Bio:      bio,
		Location: location,
		Phone:    phone,
	})
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Profile updated for @%s\n", user.Username)
}
