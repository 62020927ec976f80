package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rie622skt/InfiniteDrill/internal/api"
	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the drill engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		gen := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewTimeRand())
		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewServer(gen, st).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Printf("listening on %s", addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutCtx)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
