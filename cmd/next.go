package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bookclub-site/content"
	"bookclub-site/countdown"
	"bookclub-site/model"
	"bookclub-site/site"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next session with a live countdown",
	Long:  "Prints the upcoming session and counts down to its start until interrupted",
	RunE:  runNext,
}

func init() {
	RootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	now := time.Now()
	var upcoming []*model.Session
	for _, sess := range store.Sessions {
		status, err := site.ResolveSessionStatus(sess, now)
		if err != nil {
			return err
		}
		if status == model.SessionUpcoming {
			upcoming = append(upcoming, sess)
		}
	}
	if len(upcoming) == 0 {
		fmt.Println("no upcoming session")
		return nil
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].SessionNumber < upcoming[j].SessionNumber
	})
	sess := upcoming[0]

	fmt.Printf("%s (%s)\n", sess.Title, sess.Date)
	if book := site.FindBookBySlug(store.Books, sess.BookSlug); book != nil {
		fmt.Printf("📚 %s — %s\n", book.DisplayTitle(), book.Author)
	}
	if store.Meeting == nil {
		fmt.Println("no meeting info configured")
		return nil
	}
	fmt.Printf("🕐 %s (%s)\n", store.Meeting.Time, store.Meeting.Timezone)
	fmt.Printf("🔗 %s\n", store.Meeting.MeetLink)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presenter := countdown.NewPresenter(store.Meeting.Time, sess.Date, cfg.UTCOffsetMinutes, cfg.Lang)
	done := make(chan error, 1)
	go func() {
		done <- presenter.Run(ctx)
	}()

	for snap := range presenter.Updates() {
		fmt.Printf("\r⏰ %s          ", snap.Text)
		if snap.Expired {
			fmt.Println()
			stop()
			break
		}
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println()
	return nil
}
