package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/volatiletech/null/v8"

	"github.com/yogeshwar16/realestatehousing/internal/client"
	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	"github.com/yogeshwar16/realestatehousing/internal/session"
	"github.com/yogeshwar16/realestatehousing/pkg/validate"
)

type app struct {
	api   *client.Client
	store *session.Store
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	mobile := fs.String("mobile", "", "mobile number")
	email := fs.String("email", "", "email address")
	aadhaar := fs.String("aadhaar", "", "Aadhaar number")
	pan := fs.String("pan", "", "PAN card number")
	userType := fs.String("type", "", "account type: SELLER or CUSTOMER")
	address := fs.String("address", "", "postal address (optional)")
	fs.Parse(args)

	if !validate.MobileNumber(*mobile) {
		return fmt.Errorf("invalid mobile number %q", *mobile)
	}
	if !validate.Email(*email) {
		return fmt.Errorf("invalid email %q", *email)
	}
	if !validate.Aadhaar(*aadhaar) {
		return fmt.Errorf("invalid Aadhaar number %q", *aadhaar)
	}
	if !validate.PAN(*pan) {
		return fmt.Errorf("invalid PAN %q", *pan)
	}
	typ, err := entities.ParseUserType(*userType)
	if err != nil {
		return err
	}

	user, err := a.api.Signup(ctx, &entities.SignupRequest{
		FullName:      *name,
		MobileNumber:  *mobile,
		Email:         *email,
		AadhaarNumber: *aadhaar,
		PANCard:       *pan,
		UserType:      typ,
		Address:       null.NewString(*address, *address != ""),
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered %s (%s) as %s\n", user.FullName, user.MobileNumber, user.UserType)
	return nil
}

func (a *app) sendOTP(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send-otp", flag.ExitOnError)
	mobile := fs.String("mobile", "", "registered mobile number")
	wait := fs.Bool("wait", false, "block until the resend window elapses")
	fs.Parse(args)

	if !validate.MobileNumber(*mobile) {
		return fmt.Errorf("invalid mobile number %q", *mobile)
	}

	msg, err := a.api.SendOTP(ctx, &entities.OTPRequest{MobileNumber: *mobile})
	if err != nil {
		return err
	}
	fmt.Println(msg)

	if *wait {
		cd := client.NewCountdown(client.ResendWindow)
		go cd.Start(ctx)
		for remaining := range cd.C() {
			fmt.Printf("\rresend available in %2ds", remaining)
		}
		fmt.Println("\rresend available now    ")
	}
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	mobile := fs.String("mobile", "", "registered mobile number")
	otp := fs.String("otp", "", "one-time code")
	fs.Parse(args)

	if !validate.MobileNumber(*mobile) {
		return fmt.Errorf("invalid mobile number %q", *mobile)
	}
	if *otp == "" {
		return errors.New("otp is required")
	}

	user, err := a.api.Login(ctx, &entities.LoginRequest{MobileNumber: *mobile, OTP: *otp})
	if err != nil {
		return err
	}
	if err := a.store.Login(user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	fmt.Printf("logged in as %s (%s)\n", user.FullName, user.UserType)
	return nil
}

func (a *app) whoami() error {
	if !a.store.IsLoggedIn() {
		fmt.Println("not logged in")
		return nil
	}
	user := a.store.CurrentUser()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s (%s) %s\n", user.FullName, user.UserType, user.MobileNumber)
	if user.Address.Valid {
		fmt.Println(user.Address.String)
	}
	return nil
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	current := a.store.CurrentUser()
	if current == nil {
		return errors.New("not logged in")
	}

	fs := flag.NewFlagSet("update-profile", flag.ExitOnError)
	name := fs.String("name", current.FullName, "full name")
	email := fs.String("email", current.Email, "email address")
	aadhaar := fs.String("aadhaar", "", "Aadhaar number (optional)")
	pan := fs.String("pan", "", "PAN card number (optional)")
	address := fs.String("address", "", "postal address (optional)")
	fs.Parse(args)

	if !validate.Email(*email) {
		return fmt.Errorf("invalid email %q", *email)
	}
	if *aadhaar != "" && !validate.Aadhaar(*aadhaar) {
		return fmt.Errorf("invalid Aadhaar number %q", *aadhaar)
	}
	if *pan != "" && !validate.PAN(*pan) {
		return fmt.Errorf("invalid PAN %q", *pan)
	}

	req := &entities.UserUpdateRequest{
		FullName:      *name,
		Email:         *email,
		AadhaarNumber: null.NewString(*aadhaar, *aadhaar != ""),
		PANCard:       null.NewString(*pan, *pan != ""),
		Address:       null.NewString(*address, *address != ""),
	}
	user, err := a.api.UpdateUser(ctx, current.MobileNumber, req)
	if err != nil {
		return err
	}
	if err := a.store.UpdateUser(user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	fmt.Printf("updated profile for %s\n", user.FullName)
	return nil
}

func (a *app) logout() error {
	if err := a.store.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func (a *app) properties(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("properties", flag.ExitOnError)
	typeFlag := fs.String("type", "", "property type: LAND, FLAT, ROW_HOUSE or BUNGALOW")
	city := fs.String("city", "", "city filter")
	search := fs.String("search", "", "free-text search over title, city and address")
	fs.Parse(args)

	query := client.PropertyQuery{City: *city, Search: *search}
	var typ *entities.PropertyType
	if *typeFlag != "" {
		parsed, err := entities.ParsePropertyType(*typeFlag)
		if err != nil {
			return err
		}
		typ = &parsed
		query.Type = typ
	}

	properties, err := a.api.GetProperties(ctx, query)
	if err != nil {
		return err
	}
	// second, local pass with the same criteria
	properties = client.FilterProperties(properties, typ, *search)

	if len(properties) == 0 {
		fmt.Println("no properties found")
		return nil
	}
	for _, p := range properties {
		printProperty(&p)
	}
	return nil
}

func (a *app) property(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("property", flag.ExitOnError)
	id := fs.Int64("id", 0, "property ID")
	fs.Parse(args)

	if *id <= 0 {
		return errors.New("id is required")
	}

	p, err := a.api.GetPropertyByID(ctx, *id)
	if err != nil {
		return err
	}
	printProperty(p)
	if p.Seller != nil {
		fmt.Printf("  seller: %s (%s)\n", p.Seller.FullName, p.Seller.MobileNumber)
	}
	return nil
}

func (a *app) createProperty(ctx context.Context, args []string) error {
	current := a.store.CurrentUser()
	if current == nil {
		return errors.New("not logged in")
	}
	if !current.IsSeller() {
		return errors.New("only sellers can list properties")
	}

	fs := flag.NewFlagSet("create-property", flag.ExitOnError)
	typeFlag := fs.String("type", "", "property type: LAND, FLAT, ROW_HOUSE or BUNGALOW")
	title := fs.String("title", "", "listing title")
	description := fs.String("description", "", "description (optional)")
	size := fs.Float64("size", 0, "property size in sq ft")
	price := fs.Float64("price", 0, "asking price")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	pincode := fs.String("pincode", "", "postal code")
	fs.Parse(args)

	typ, err := entities.ParsePropertyType(*typeFlag)
	if err != nil {
		return err
	}
	if *title == "" || *address == "" || *city == "" || *state == "" || *pincode == "" {
		return errors.New("title, address, city, state and pincode are required")
	}

	p, err := a.api.CreateProperty(ctx, current.UserID.Int64, &entities.PropertyRequest{
		PropertyType: typ,
		Title:        *title,
		Description:  *description,
		PropertySize: *size,
		Price:        *price,
		Address:      *address,
		City:         *city,
		State:        *state,
		Pincode:      *pincode,
	})
	if err != nil {
		return err
	}

	fmt.Printf("listed property #%d: %s\n", p.ID.Int64, p.Title)
	return nil
}

func (a *app) inquire(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inquire", flag.ExitOnError)
	propertyID := fs.Int64("property", 0, "property ID")
	description := fs.String("description", "", "inquiry text (optional)")
	terms := fs.Bool("accept-terms", false, "accept the terms and conditions")
	fs.Parse(args)

	// eligibility is checked locally before anything goes on the wire
	current := a.store.CurrentUser()
	if current == nil {
		return errors.New("not logged in")
	}
	if !current.IsCustomer() {
		return errors.New("only customers can raise inquiries")
	}
	if !*terms {
		return errors.New("terms must be accepted (pass -accept-terms)")
	}
	if *propertyID <= 0 {
		return errors.New("property is required")
	}

	p, err := a.api.GetPropertyByID(ctx, *propertyID)
	if err != nil {
		return err
	}
	if current.UserID.Valid && p.OwnedBy(current.UserID.Int64) {
		return errors.New("cannot inquire about your own property")
	}

	msg, err := a.api.CreateInquiry(ctx, current.MobileNumber, &entities.InquiryRequest{
		PropertyID:         *propertyID,
		InquiryDescription: null.NewString(*description, *description != ""),
		TermsAccepted:      true,
	})
	if err != nil {
		return err
	}

	fmt.Println(msg)
	return nil
}

func printProperty(p *entities.Property) {
	fmt.Fprintf(os.Stdout, "#%d [%s] %s, %s  %.0f sq ft  ₹%.0f\n",
		p.ID.Int64, p.PropertyType, p.Title, p.City, p.PropertySize, p.Price)
}
