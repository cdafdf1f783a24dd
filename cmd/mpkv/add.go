package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/mpkv/pkg/core"
)

var addTags string

var addCmd = &cobra.Command{
	Use:   "add <title> [content]",
	Short: "Add a new note",
	Long: `Create a new note with the given title, content, and optional tags.
If content is not given as an argument it is read interactively,
line by line, until an empty line.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		title := args[0]

		tags := core.Tags{}
		if cmd.Flags().Changed("tags") {
			tags = core.TagsFromString(addTags)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "Enter tags (comma-separated, optional): ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			if line = strings.TrimSpace(line); line != "" {
				tags = core.TagsFromString(line)
			}
		}

		var content string
		if len(args) == 2 {
			content = args[1]
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "\nEnter note content (empty line to finish):")
			var lines []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					break
				}
				lines = append(lines, line)
			}
			content = strings.Join(lines, "\n")
		}

		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := v.Create(title, content, tags)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nNote '%s' created successfully!\n", note.Title)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Tags for the note (comma-separated)")
}
