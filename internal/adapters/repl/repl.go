package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dashboard-customization/internal/app"
	"dashboard-customization/internal/core"
)

var errExit = errors.New("exit")

// Run starts the interactive REPL loop. It reads slash commands from reader
// and writes results to out until /exit or end of input.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, out io.Writer) error {
	cfg, err := svc.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, cfg.Title)
	fmt.Fprintf(out, "Company: %s  User: %s\n", cfg.CompanyName, cfg.UserName)
	fmt.Fprintln(out, "Type /help for commands.")
	fmt.Fprintln(out, strings.Repeat("-", 70))

	for {
		fmt.Fprint(out, "\n> ")
		input, readErr := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if input != "" {
			if !strings.HasPrefix(input, "/") {
				fmt.Fprintln(out, "Commands start with / (type /help).")
			} else if err := dispatch(ctx, svc, out, input); err != nil {
				if errors.Is(err, errExit) {
					fmt.Fprintln(out, "Goodbye!")
					return nil
				}
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

func dispatch(ctx context.Context, svc app.ApplicationService, out io.Writer, input string) error {
	tokens := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(tokens) == 0 {
		return nil
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "tabs":
		result, err := svc.ListTabs(ctx)
		if err != nil {
			return err
		}
		printTabs(out, result)

	case "render", "open":
		if len(args) < 1 {
			fmt.Fprintln(out, "Usage: /render <tab-id>")
			return nil
		}
		result, err := svc.RenderTab(ctx, args[0])
		if err != nil {
			if errors.Is(err, app.ErrNotFound) {
				fmt.Fprintf(out, "Nothing to show for tab %q.\n", args[0])
				return nil
			}
			return err
		}
		if err := result.Component.Render(ctx, out); err != nil {
			return err
		}
		fmt.Fprintln(out)

	case "chart":
		if len(args) < 2 {
			fmt.Fprintf(out, "Usage: /chart <%s|%s> <name>\n", core.SectionDashboard, core.SectionAnalytics)
			return nil
		}
		result, err := svc.GetChart(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printChart(out, result)

	case "clients":
		cfg, err := svc.GetConfig(ctx)
		if err != nil {
			return err
		}
		printClients(out, cfg.Clients)

	case "data":
		if len(args) < 1 {
			fmt.Fprintf(out, "Usage: /data <%s|%s|%s>\n", core.DataPropertyStatuses, core.DataInvoiceStatuses, core.DataActionTypes)
			return nil
		}
		result, err := svc.GetReferenceList(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", result.Name, strings.Join(result.Values, ", "))

	case "check":
		if err := svc.CheckConsistency(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Customization is consistent.")

	case "help", "h":
		printHelp(out)

	case "exit", "quit", "q":
		return errExit

	default:
		fmt.Fprintf(out, "Unknown command: /%s  (type /help for all commands)\n", cmd)
	}
	return nil
}
