package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/web-notes/internal/notesclient"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [note-id]",
	Short: "Delete a note after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		a.actions.DeleteNote(commandContext(cmd), notesclient.NoteID(args[0]))
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [note-id]",
	Short: "Replace the text of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		a.actions.EditNote(commandContext(cmd), notesclient.NoteID(args[0]))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		return a.home.Render(commandContext(cmd))
	},
}

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		note, err := a.client.CreateNote(ctx, strings.Join(args, " "))

		var appErr *notesclient.ApplicationError
		if errors.As(err, &appErr) && appErr.Message != "" {
			return errors.New(appErr.Message)
		}
		if err != nil {
			return fmt.Errorf("add note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note added! (#%d)\n", note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd, editCmd, listCmd, addCmd)
}
