package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"bostonhouse/config"
	"bostonhouse/internal/app"
	"bostonhouse/internal/listing"
	"bostonhouse/internal/models"
	"bostonhouse/internal/predict"
	"bostonhouse/internal/store"
	"bostonhouse/internal/theme"
)

func main() {
	// Optional .env for local overrides
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	themes, err := theme.NewStore(cfg.PreferencesPath, logger)
	if err != nil {
		logger.WithError(err).Warn("Theme preference persistence unavailable")
		themes = nil
	}

	a := app.New(cfg, themes, logger)
	if saved := a.Theme(); saved != "" {
		logger.WithField("theme", saved).Info("Applied saved theme")
	}

	fmt.Print(a.CurrentView())
	fmt.Println("\nType 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		runCommand(a, line)
	}

	if err := scanner.Err(); err != nil {
		logger.WithError(err).Error("Input stream failed")
	}
}

func runCommand(a *app.App, line string) {
	ctx := context.Background()
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "help":
		printHelp()
		return

	case "view":
		// nothing to do, the render below is the output

	case "nav":
		a.Navigate(strings.TrimSpace(rest))

	case "menu":
		if a.ToggleMenu() {
			fmt.Println("Mobile menu open")
		} else {
			fmt.Println("Mobile menu closed")
		}

	case "login":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			fmt.Println("usage: login <email> <password>")
			return
		}
		if err := a.Login(ctx, fields[0], fields[1]); err != nil {
			fmt.Println(err)
			return
		}

	case "register":
		// register name|phone|email|password|confirm|role
		parts := strings.Split(rest, "|")
		if len(parts) != 6 {
			fmt.Println("usage: register <name>|<phone>|<email>|<password>|<confirm>|<role>")
			return
		}
		form := store.RegisterForm{
			Name:            strings.TrimSpace(parts[0]),
			Phone:           strings.TrimSpace(parts[1]),
			Email:           strings.TrimSpace(parts[2]),
			Password:        strings.TrimSpace(parts[3]),
			ConfirmPassword: strings.TrimSpace(parts[4]),
			Role:            strings.TrimSpace(parts[5]),
		}
		if err := a.Register(ctx, form); err != nil {
			fmt.Println(err)
			return
		}

	case "logout":
		a.Logout()

	case "search":
		f := a.Filter()
		f.Query = rest
		a.SetFilter(f)

	case "filter":
		field, value, _ := strings.Cut(rest, " ")
		f := a.Filter()
		switch field {
		case "neighborhood":
			f.Neighborhood = value
		case "min":
			f.MinPrice = value
		case "max":
			f.MaxPrice = value
		case "bedrooms":
			f.Bedrooms = value
		case "type":
			f.PropertyType = value
		case "clear":
			f = listing.Filter{}
		default:
			fmt.Println("usage: filter neighborhood|min|max|bedrooms|type|clear [value]")
			return
		}
		a.SetFilter(f)

	case "fav":
		id, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			fmt.Println("usage: fav <property-id>")
			return
		}
		saved, err := a.ToggleFavorite(id)
		if err != nil {
			fmt.Println(err)
			return
		}
		if saved {
			fmt.Println("Added to favorites")
		} else {
			fmt.Println("Removed from favorites")
		}

	case "predict":
		features := parseFeatures(rest)
		result, err := a.SubmitPrediction(ctx, features)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Predicted price: $%.0f (confidence %.0f%%)\n",
			result.Price, result.Confidence*100)

	case "select":
		a.SelectNeighborhood(strings.TrimSpace(rest))

	case "profile":
		// profile name|email|phone
		parts := strings.Split(rest, "|")
		if len(parts) != 3 {
			fmt.Println("usage: profile <name>|<email>|<phone>")
			return
		}
		if err := a.SaveProfile(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])); err != nil {
			fmt.Println(err)
			return
		}

	case "chat":
		reply, err := a.Chat(rest)
		if err != nil {
			fmt.Println(err)
			return
		}
		if reply != "" {
			fmt.Printf("Assistant: %s\n", reply)
		}
		return

	case "theme":
		fmt.Printf("Theme: %s\n", a.ToggleTheme())
		return

	default:
		fmt.Println("Unknown command; type 'help'")
		return
	}

	fmt.Print(a.CurrentView())
}

// parseFeatures builds a feature vector from CODE=VALUE pairs layered over
// the form defaults. Values that do not parse fall back to zero, matching
// the form's lenient numeric handling.
func parseFeatures(input string) models.Features {
	features := predict.DefaultFeatures()
	for _, pair := range strings.Fields(input) {
		code, raw, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			value = 0
		}
		features.Set(strings.ToUpper(code), value)
	}
	return features
}

func printHelp() {
	fmt.Println(`Commands:
  view                                     show the current page
  nav <page>                               go to home|login|register|dashboard|properties|predictions|map|profile
  menu                                     toggle the mobile menu
  login <email> <password>                 sign in
  register <name>|<phone>|<email>|<password>|<confirm>|<role>
  logout                                   sign out
  search <text>                            free-text property search
  filter neighborhood|min|max|bedrooms|type|clear [value]
  fav <property-id>                        toggle a favorite
  predict [CODE=VALUE ...]                 run the price model (defaults filled in)
  select <neighborhood>                    show neighborhood details on the map page
  profile <name>|<email>|<phone>           save profile edits
  chat <message>                           ask the assistant
  theme                                    toggle light/dark
  quit                                     exit`)
}
