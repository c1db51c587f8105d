package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecocart/assistcache/internal/assistant"
)

func newAskCmd() *cobra.Command {
	var (
		configPath string
		model      string
		offline    bool
		faqOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Answer a query, cache first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := context.Background()
			svc := a.service(offline, model)

			if faqOnly {
				item, err := svc.AskFAQ(ctx, query)
				if err != nil {
					return err
				}
				if item == nil {
					fmt.Println("No matching FAQ entry.")
					return nil
				}
				fmt.Printf("[%s] %s\n%s\n", item.Category, item.Question, item.Answer)
				return nil
			}

			answer, err := svc.Ask(ctx, query)
			if errors.Is(err, assistant.ErrNoBackend) {
				fmt.Println("No cached answer, and no assistant backend is configured.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(answer.Response)
			if answer.FromCache {
				fmt.Printf("(cached, similarity %.2f)\n", answer.Similarity)
			} else {
				fmt.Printf("(live, model %s)\n", answer.Model)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&model, "model", "", "override the assistant model")
	cmd.Flags().BoolVar(&offline, "offline", false, "answer from the cache only")
	cmd.Flags().BoolVar(&faqOnly, "faq", false, "answer from the FAQ corpus only")
	return cmd
}
