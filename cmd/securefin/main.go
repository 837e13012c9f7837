// Command securefin is a terminal frontend for the SecureFin API: resume or
// establish a session, then browse the dashboard and expense list.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/AshutoshGit-15/SecureFin/pkg/securefin"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const usage = `Usage: securefin [flags] <command>

Commands:
  login       Log in and persist the session
  register    Create an account
  dashboard   Show the dashboard summary
  expenses    List expenses (see -filter)
  add         Add an expense
  delete      Delete an expense by id (asks for confirmation)
  logout      Clear the stored session
`

func main() {
	// A .env next to the binary may carry SECUREFIN_API_URL
	_ = godotenv.Load()

	baseURL := flag.String("base", os.Getenv(securefin.BaseURLEnvVar), "API base URL (defaults to SECUREFIN_API_URL)")
	credsFile := flag.String("credentials", "", "credentials file path (defaults to ~/.securefin/credentials.json)")
	verbose := flag.Bool("verbose", false, "log API traffic")
	filter := flag.String("filter", "all", "expense filter: all, disputed, blockchain")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	opts := &securefin.ClientOptions{
		BaseURL:         *baseURL,
		CredentialsFile: *credsFile,
	}
	if *verbose {
		opts.Logger = stderrLogger{}
	}

	client, err := securefin.NewClient(opts)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	command := flag.Arg(0)

	// Every command except login/register needs a live session
	switch command {
	case "login", "register", "logout":
	default:
		if client.Auth.Resume(ctx) == nil {
			log.Fatal("Not logged in. Run: securefin login")
		}
	}

	router := securefin.NewRouter(client.Session())

	switch command {
	case "login":
		runLogin(ctx, client)
	case "register":
		runRegister(ctx, client)
	case "dashboard":
		runDashboard(ctx, client)
	case "expenses":
		runExpenses(ctx, client, securefin.ExpenseFilter(*filter))
	case "add":
		runAdd(ctx, client, flag.Args()[1:])
	case "delete":
		runDelete(ctx, client, flag.Args()[1:])
	case "logout":
		client.Auth.Logout()
		fmt.Println("Logged out.")
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "route: %s\n", router.Route())
	}
}

func runLogin(ctx context.Context, client *securefin.Client) {
	username := prompt("Username: ")
	password := promptPassword("Password: ")

	user, err := client.Auth.Login(ctx, username, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Printf("Welcome back, %s!\n", user.Username)
}

func runRegister(ctx context.Context, client *securefin.Client) {
	params := &securefin.RegisterParams{
		Username:    prompt("Username: "),
		Email:       prompt("Email: "),
		PhoneNumber: prompt("Phone number (optional): "),
	}
	fmt.Sscanf(prompt("Monthly income (₹): "), "%f", &params.MonthlyIncome)
	params.Password = promptPassword("Password: ")

	user, err := client.Auth.Register(ctx, params)
	if err != nil {
		log.Fatalf("Registration failed: %v", err)
	}
	fmt.Printf("Account created. Welcome, %s!\n", user.Username)
}

func runDashboard(ctx context.Context, client *securefin.Client) {
	view := securefin.NewDashboardView(client)
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Failed to load dashboard: %v", err)
	}
	snapshot := view.Snapshot()

	fmt.Printf("Monthly Income    %s\n", securefin.FormatINR(snapshot.MonthlyIncome))
	fmt.Printf("Monthly Expenses  %s\n", securefin.FormatINR(snapshot.MonthlyExpenses))
	fmt.Printf("Balance           %s (%s)\n", securefin.FormatINR(snapshot.Balance), snapshot.BalanceTone())
	fmt.Printf("Savings Rate      %s\n", snapshot.SavingsRateDisplay())

	if len(snapshot.Alerts) > 0 {
		fmt.Println("\nAlerts:")
		for _, alert := range snapshot.Alerts {
			fmt.Printf("  [%s] %s\n", alert.Type, alert.Message)
		}
	}

	if len(snapshot.BudgetStatus) > 0 {
		fmt.Println("\nBudgets:")
		for _, status := range view.Snapshot().BudgetStatuses() {
			fmt.Printf("  %-14s %s  %s / %s  %s  %s\n",
				status.Category,
				progressBar(status.ProgressPercent),
				securefin.FormatINR(status.Spent),
				securefin.FormatINR(status.Budgeted),
				status.UsedText(),
				status.RemainingText())
			if status.Over {
				fmt.Printf("  %-14s over budget\n", "")
			} else if status.Warning {
				fmt.Printf("  %-14s nearing budget\n", "")
			}
		}
	}

	if len(snapshot.DailySpending) > 0 {
		fmt.Println("\nLast 7 days:")
		for _, day := range snapshot.DailySpending {
			fmt.Printf("  %s  %s\n", day.Date, securefin.FormatINR(day.Amount))
		}
	}
}

func runExpenses(ctx context.Context, client *securefin.Client, filter securefin.ExpenseFilter) {
	view := securefin.NewExpenseView(client)
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Failed to load expenses: %v", err)
	}
	view.SetFilter(filter)

	counts := view.Counts()
	fmt.Printf("All %d | Disputed %d | Blockchain %d  (showing: %s)\n\n",
		counts[securefin.FilterAll],
		counts[securefin.FilterDisputed],
		counts[securefin.FilterBlockchain],
		filter)

	for _, e := range view.Visible() {
		marker := " "
		if e.Status == securefin.StatusDisputed {
			marker = "!"
		}
		chain := ""
		if e.OnBlockchain() {
			chain = " [on-chain]"
		}
		fmt.Printf("%s #%-4d %-30s %-12s %10s  %s%s\n",
			marker, e.ID, e.Description, e.Category,
			securefin.FormatINR(e.Amount.Float64()),
			e.PaymentMethod, chain)
	}
}

func runAdd(ctx context.Context, client *securefin.Client, args []string) {
	flags := flag.NewFlagSet("add", flag.ExitOnError)
	amount := flags.Float64("amount", 0, "amount in rupees")
	description := flags.String("description", "", "what the expense was for")
	category := flags.Int("category", 0, "category id")
	method := flags.String("method", "upi", "payment method")
	merchant := flags.String("merchant", "", "merchant name (optional)")
	_ = flags.Parse(args)

	view := securefin.NewExpenseView(client)
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Failed to load expenses: %v", err)
	}

	err := view.Add(ctx, &securefin.ExpenseDraft{
		Amount:        *amount,
		Description:   *description,
		Category:      *category,
		PaymentMethod: securefin.PaymentMethod(*method),
		MerchantName:  *merchant,
	})
	if err != nil {
		log.Fatalf("Failed to add expense: %v", err)
	}
	fmt.Println("Expense added.")
}

func runDelete(ctx context.Context, client *securefin.Client, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: securefin delete <id>")
	}
	var id int
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		log.Fatalf("Invalid expense id: %s", args[0])
	}

	view := securefin.NewExpenseView(client)
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Failed to load expenses: %v", err)
	}

	confirm := func() bool {
		answer := prompt(fmt.Sprintf("Delete expense #%d? [y/N] ", id))
		return strings.EqualFold(answer, "y")
	}

	if err := view.Delete(ctx, id, confirm); err != nil {
		log.Fatalf("Failed to delete expense: %v", err)
	}
	fmt.Println("Done.")
}

func progressBar(percent float64) string {
	const width = 20
	filled := int(percent / 100 * width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(label string) string {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	return string(raw)
}

// stderrLogger is the minimal key/value logger for -verbose runs.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, keysAndValues ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s", level, msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(os.Stderr, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	fmt.Fprintln(os.Stderr)
}

func (l stderrLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log("DEBUG", msg, keysAndValues...)
}

func (l stderrLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log("INFO", msg, keysAndValues...)
}

func (l stderrLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log("WARN", msg, keysAndValues...)
}

func (l stderrLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log("ERROR", msg, keysAndValues...)
}
