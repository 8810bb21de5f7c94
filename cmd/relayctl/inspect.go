package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var (
		dbPath string
		prefix string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the relay store as a table",
		Long: `Dump badger entries under a key prefix, read-only.

Prefixes: user: username: channel: msg: msgid: peer: pair:`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openReadOnly(dbPath)
			if err != nil {
				return fmt.Errorf("opening badger: %w", err)
			}
			defer db.Close()
			return inspect(db, prefix, limit, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", database.DefaultPath, "Path to badger DB")
	cmd.Flags().StringVar(&prefix, "prefix", "channel:", "Key prefix to scan")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows, 0 for all")
	return cmd
}

func inspect(db *badger.DB, prefix string, limit int, out io.Writer) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Key", "ID", "Detail", "Fields"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			if limit > 0 && rows >= limit {
				return nil
			}
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append(describe(key, v))
				return nil
			})
			if err != nil {
				return err
			}
			rows++
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	_, err = fmt.Fprintf(out, "%d row(s)\n", rows)
	return err
}

// describe turns one entry into a table row. Index entries hold a bare id.
func describe(key string, value []byte) []string {
	var record map[string]any
	if err := json.Unmarshal(value, &record); err != nil {
		return []string{key, string(value), "", "index"}
	}

	id, _ := record["id"].(string)
	if len(id) > 8 {
		id = id[:8]
	}
	var detail string
	for _, field := range []string{"content", "username", "name"} {
		if v, ok := record[field].(string); ok {
			detail = v
			break
		}
	}
	var fields []string
	for _, flag := range []string{"admin", "admin_only", "is_private"} {
		if v, ok := record[flag].(bool); ok && v {
			fields = append(fields, flag)
		}
	}
	if v, ok := record["channel_id"].(string); ok {
		fields = append(fields, "channel="+v)
	}
	return []string{key, id, detail, strings.Join(fields, " ")}
}

func openReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err == nil || !strings.Contains(err.Error(), "Log truncate required") {
		return db, err
	}

	// A relay killed mid-write leaves a value log to truncate, which needs a
	// writable open once.
	repair, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
	if err != nil {
		return nil, fmt.Errorf("repair failed: %w", err)
	}
	_ = repair.Close()
	return badger.Open(opts)
}
