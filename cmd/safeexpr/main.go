// Command safeexpr evaluates restricted arithmetic expressions. With
// arguments it evaluates each one and exits; with none it prompts for
// expressions until q, quit, exit, end of input, or an interrupt.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ostrica/safeexpr"
)

var rootCmd = &cobra.Command{
	Use:   "safeexpr [expression ...]",
	Short: "Safe arithmetic calculator",
	Long: `Evaluate arithmetic over numbers, + - * / // % ** and parentheses.
Nothing else evaluates: no names, no calls, no comparisons.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().Bool("echo", false, "print parse trees before results")
	rootCmd.Flags().Int("max-depth", safeexpr.DefaultMaxDepth, "maximum expression nesting depth")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	echo, _ := cmd.Flags().GetBool("echo")
	depth, _ := cmd.Flags().GetInt("max-depth")
	if depth < 1 {
		return fmt.Errorf("max-depth (%d) must be positive", depth)
	}
	opts := []safeexpr.ParseOption{safeexpr.MaxDepth(depth)}
	if len(args) > 0 {
		for _, arg := range args {
			if err := evalOnce(arg, echo, opts); err != nil {
				return err
			}
		}
		return nil
	}
	repl(echo, opts)
	return nil
}

func evalOnce(src string, echo bool, opts []safeexpr.ParseOption) error {
	a, err := safeexpr.ParseString(src, opts...)
	if err != nil {
		return err
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	n, err := safeexpr.Evaluate(a)
	if err != nil {
		return err
	}
	fmt.Println(safeexpr.Format(n))
	return nil
}

func repl(echo bool, opts []safeexpr.ParseOption) {
	// ^C ends the session the same way end of input does.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println()
		os.Exit(0)
	}()

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("» ")
		if !sc.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return
		}
		a, err := safeexpr.ParseString(line, opts...)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		n, err := safeexpr.Evaluate(a)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(safeexpr.Format(n))
	}
}
