// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/query"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func cmdComplaints() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "complaints",
		Short: "inspect and triage stored complaints",
	}
	cmd.AddCommand(cmdComplaintsList())
	cmd.AddCommand(cmdComplaintsSetStatus())
	cmd.AddCommand(cmdComplaintsExport())
	return cmd
}

func cmdComplaintsList() *cobra.Command {
	var district, mandal, search string
	sortKey, sortDir := string(query.SortByCreatedAt), string(query.Desc)
	asJSON := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&district, "district", district, "only this district")
		cmd.Flags().StringVar(&mandal, "mandal", mandal, "only this mandal (requires --district)")
		cmd.Flags().StringVarP(&search, "search", "q", search, "match description, name, or mobile")
		cmd.Flags().StringVar(&sortKey, "sort", sortKey, "sort key: id, createdAt, status")
		cmd.Flags().StringVar(&sortDir, "dir", sortDir, "sort direction: asc, desc")
		cmd.Flags().BoolVar(&asJSON, "json", asJSON, "write JSON instead of a table")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "list",
		Short:        "list complaints the way the admin dashboard shows them",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := query.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			dir, err := query.ParseDirection(sortDir)
			if err != nil {
				return err
			}
			c := catalog.Default()
			if district != "" && !c.HasDistrict(district) {
				return fmt.Errorf("unknown district %q", district)
			}
			if mandal != "" && !c.HasMandal(district, mandal) {
				return fmt.Errorf("unknown mandal %q in district %q", mandal, district)
			}

			backing, store, err := openComplaints(context.Background())
			if err != nil {
				return err
			}
			defer backing.Close()

			a := query.NewAdmin(c)
			a.SetDistrict(district)
			a.SetMandal(mandal)
			a.SetSearch(search)
			a.SetSort(query.Sort{Key: key, Direction: dir})
			rows := a.Apply(store.All())

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return printComplaints(rows)
		},
	}
	if err := addFlags(cmd); err != nil {
		logrus.Fatal(err)
	}
	return cmd
}

func printComplaints(rows []model.Complaint) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSTATUS\tDISTRICT\tMANDAL\tVILLAGE\tNAME\tMOBILE\tDESCRIPTION")
	for _, c := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.CreatedAt.Format("2006-01-02 15:04"), c.Status,
			c.District, c.Mandal, c.Village, c.Name, c.Mobile, truncate(c.Description, 48))
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

func cmdComplaintsSetStatus() *cobra.Command {
	return &cobra.Command{
		Use:          "set-status <id> <status>",
		Short:        "change the status of a complaint (Pending, In Progress, Resolved)",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid complaint id %q", args[0])
			}
			status, err := model.ParseStatus(args[1])
			if err != nil {
				return err
			}

			ctx := context.Background()
			backing, store, err := openComplaints(ctx)
			if err != nil {
				return err
			}
			defer backing.Close()

			prev, ok := store.Get(id)
			if !ok {
				return fmt.Errorf("complaint %d not found", id)
			}
			if err := store.UpdateStatus(ctx, id, status); err != nil {
				return err
			}
			fmt.Printf("complaint %d: %s -> %s\n", id, prev.Status, status)
			return nil
		},
	}
}

func cmdComplaintsExport() *cobra.Command {
	return &cobra.Command{
		Use:          "export <path>",
		Short:        "write all complaints to a JSON file usable with --seed",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backing, store, err := openComplaints(context.Background())
			if err != nil {
				return err
			}
			defer backing.Close()
			if err := store.WriteSeedFile(afero.NewOsFs(), args[0]); err != nil {
				return err
			}
			logrus.WithField("component", "store").Infof("store: exported %d complaints to %s", len(store.All()), args[0])
			return nil
		},
	}
}
