// Command cli is a thin terminal front end for the go-pass-vault API.
//
// Usage:
//
//	cli [-a address] [-t timeout] <command> [command flags]
//
// Commands:
//
//	create-client    -login -password
//	update-client    -client -login -password
//	delete-client    -client
//	list-passwords   -client
//	create-password  -client -name [-website] -login -value
//	update-password  -client -password-id -name [-website] -login -value
//	delete-password  -client -password-id
//	version
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-pass-vault-cli")

	rootFlags := flag.NewFlagSet("cli", flag.ExitOnError)
	address := rootFlags.String("a", "http://localhost:8080", "server address")
	timeout := rootFlags.Duration("t", 10*time.Second, "request timeout")
	showBuild := rootFlags.Bool("build-info", false, "print build info and exit")

	if err := rootFlags.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}

	if *showBuild {
		printBuildInfo()
		return
	}

	args := rootFlags.Args()
	if len(args) == 0 {
		rootFlags.Usage()
		os.Exit(2)
	}

	vault, err := client.NewVaultClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("creating vault client")
	}

	ctx := context.Background()

	if err := runCommand(ctx, vault, args[0], args[1:]); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func runCommand(ctx context.Context, vault client.VaultClient, command string, args []string) error {
	switch command {
	case "create-client":
		return createClient(ctx, vault, args)
	case "update-client":
		return updateClient(ctx, vault, args)
	case "delete-client":
		return deleteClient(ctx, vault, args)
	case "list-passwords":
		return listPasswords(ctx, vault, args)
	case "create-password":
		return createPassword(ctx, vault, args)
	case "update-password":
		return updatePassword(ctx, vault, args)
	case "delete-password":
		return deletePassword(ctx, vault, args)
	case "version":
		return serverVersion(ctx, vault)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func createClient(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("create-client", flag.ExitOnError)
	login := fs.String("login", "", "client login (required)")
	password := fs.String("password", "", "client password (required)")
	fs.Parse(args)

	if *login == "" || *password == "" {
		return fmt.Errorf("both -login and -password are required")
	}

	result, err := vault.CreateClient(ctx, models.ClientData{Login: *login, Password: *password})
	if err != nil {
		return err
	}

	return printJSON(result)
}

func updateClient(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("update-client", flag.ExitOnError)
	clientID := fs.String("client", "", "client id (required)")
	login := fs.String("login", "", "new login (required)")
	password := fs.String("password", "", "new password (required)")
	fs.Parse(args)

	if *clientID == "" || *login == "" || *password == "" {
		return fmt.Errorf("-client, -login and -password are required")
	}

	result, err := vault.UpdateClient(ctx, *clientID, models.ClientData{Login: *login, Password: *password})
	if err != nil {
		return err
	}

	return printJSON(result)
}

func deleteClient(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("delete-client", flag.ExitOnError)
	clientID := fs.String("client", "", "client id (required)")
	fs.Parse(args)

	if *clientID == "" {
		return fmt.Errorf("-client is required")
	}

	if err := vault.DeleteClient(ctx, *clientID); err != nil {
		return err
	}

	fmt.Println("client deleted")
	return nil
}

func listPasswords(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("list-passwords", flag.ExitOnError)
	clientID := fs.String("client", "", "client id (required)")
	fs.Parse(args)

	if *clientID == "" {
		return fmt.Errorf("-client is required")
	}

	result, err := vault.GetPasswords(ctx, *clientID)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func createPassword(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("create-password", flag.ExitOnError)
	clientID := fs.String("client", "", "client id (required)")
	name := fs.String("name", "", "entry name (required)")
	website := fs.String("website", "", "entry website (optional)")
	login := fs.String("login", "", "entry login (required)")
	value := fs.String("value", "", "secret value (required)")
	fs.Parse(args)

	if *clientID == "" || *name == "" || *login == "" || *value == "" {
		return fmt.Errorf("-client, -name, -login and -value are required")
	}

	data := models.PasswordData{Name: *name, Login: *login, Value: *value}
	if *website != "" {
		data.Website = website
	}

	result, err := vault.CreatePassword(ctx, *clientID, data)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func updatePassword(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("update-password", flag.ExitOnError)
	clientID := fs.String("client", "", "client id (required)")
	passwordID := fs.String("password-id", "", "password id (required)")
	name := fs.String("name", "", "entry name (required)")
	website := fs.String("website", "", "entry website (optional)")
	login := fs.String("login", "", "entry login (required)")
	value := fs.String("value", "", "secret value (required)")
	fs.Parse(args)

	if *clientID == "" || *passwordID == "" || *name == "" || *login == "" || *value == "" {
		return fmt.Errorf("-client, -password-id, -name, -login and -value are required")
	}

	data := models.PasswordData{Name: *name, Login: *login, Value: *value}
	if *website != "" {
		data.Website = website
	}

	result, err := vault.UpdatePassword(ctx, *clientID, *passwordID, data)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func deletePassword(ctx context.Context, vault client.VaultClient, args []string) error {
	fs := flag.NewFlagSet("delete-password", flag.ExitOnError)
	clientID := fs.String("client", "", "client id (required)")
	passwordID := fs.String("password-id", "", "password id (required)")
	fs.Parse(args)

	if *clientID == "" || *passwordID == "" {
		return fmt.Errorf("-client and -password-id are required")
	}

	if err := vault.DeletePassword(ctx, *clientID, *passwordID); err != nil {
		return err
	}

	fmt.Println("password deleted")
	return nil
}

func serverVersion(ctx context.Context, vault client.VaultClient) error {
	resp, err := vault.ServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Println(resp.Version)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering response: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
