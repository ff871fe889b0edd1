package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/trackmeet/internal/config"
	"github.com/mmynk/trackmeet/internal/service"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/internal/storage/sqlite"
)

const backupTimeout = time.Minute

func backupCommand(cfg func() *config.Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write the whole meet state to a JSON file",
		Long:  `Backup reads every state slice from the database and writes them as one JSON document, the same format the settings Backup RPC returns.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(cmd.Context(), cfg().DB.Path, output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func runBackup(ctx context.Context, dbPath, output string, stdout io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	snap, err := storage.LoadSnapshot(ctx, store)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if output == "" {
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	slog.Info("Backup completed", "file", output, "bytes", len(data))
	return nil
}

func restoreCommand(cfg func() *config.Config) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the whole meet state with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("restoring replaces all meet data; pass --yes to confirm")
			}
			return runRestore(cmd.Context(), cfg().DB.Path, args[0])
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing all meet data")
	return cmd
}

func runRestore(ctx context.Context, dbPath, input string) error {
	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	snap, err := service.DecodeBackup(data)
	if err != nil {
		return err
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	if err := storage.SaveSnapshot(ctx, store, snap, storage.Keys...); err != nil {
		return err
	}
	slog.Info("Restore completed",
		"file", input,
		"schools", len(snap.Schools),
		"athletes", len(snap.Athletes),
		"events", len(snap.Events),
	)
	return nil
}
