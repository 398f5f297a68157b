// Command asaasctl runs single Asaas API calls and prints the result as
// JSON. Settings come from the environment (ASAAS_API_KEY and friends), an
// optional ASAAS_CONFIG YAML file and a .env file in the working directory.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	asaas "github.com/lucasbrito-wdt/asaas-sdk-go"
	"github.com/lucasbrito-wdt/asaas-sdk-go/config"
)

const usage = `usage: asaasctl <command> [args]

commands:
  balance                 print the account balance
  customer-get <id>       fetch a customer
  payment-get <id>        fetch a payment
  payment-create          create a payment from the JSON request on stdin
  payment-confirm <id>    confirm a payment (sandbox only)`

// Config holds the command's IO and extra client options.
type Config struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Sources config.Sources
	Options []asaas.Option
}

// DefaultConfig wires the process streams.
func DefaultConfig() Config {
	src := config.Sources{File: os.Getenv("ASAAS_CONFIG")}
	if _, err := os.Stat(".env"); err == nil {
		src.DotEnv = ".env"
	}
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Sources: src,
	}
}

func main() {
	if err := run(os.Args[1:], DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var apiErr *asaas.Error
		if errors.As(err, &apiErr) {
			for _, item := range asaas.ValidationErrors(err) {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", item.Code, item.Description)
			}
		}
		os.Exit(1)
	}
}

func run(args []string, cfg Config) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	file, err := config.Load(cfg.Sources)
	if err != nil {
		return err
	}
	client := asaas.New(append(file.Options(), cfg.Options...)...)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var result any
	switch args[0] {
	case "balance":
		result, err = client.Finance.Balance(ctx)
	case "customer-get":
		id, argErr := argument(args, "customer-get <id>")
		if argErr != nil {
			return argErr
		}
		result, err = client.Customers.Get(ctx, id)
	case "payment-get":
		id, argErr := argument(args, "payment-get <id>")
		if argErr != nil {
			return argErr
		}
		result, err = client.Payments.Get(ctx, id)
	case "payment-create":
		var req asaas.PaymentCreateRequest
		if decErr := json.NewDecoder(cfg.Stdin).Decode(&req); decErr != nil {
			return fmt.Errorf("parse request: %w", decErr)
		}
		result, err = client.Payments.Create(ctx, &req)
	case "payment-confirm":
		id, argErr := argument(args, "payment-confirm <id>")
		if argErr != nil {
			return argErr
		}
		result, err = client.Sandbox.ConfirmPayment(ctx, id)
	default:
		return fmt.Errorf("unknown command: %s\n\n%s", args[0], usage)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cfg.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func argument(args []string, form string) (string, error) {
	if len(args) < 2 || args[1] == "" {
		return "", fmt.Errorf("usage: asaasctl %s", form)
	}
	return args[1], nil
}
