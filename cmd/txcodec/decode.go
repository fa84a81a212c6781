// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/dusk-network/starknet-codec/pkg/core/data/transactions"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func readInput(ctx *cli.Context) ([]byte, error) {
	if len(ctx.Args()) > 1 {
		return nil, fmt.Errorf("too many arguments: %q", ctx.Args()[1:])
	}

	path := ctx.Args().First()
	if path == "" || path == "-" {
		return ioutil.ReadAll(os.Stdin)
	}

	return ioutil.ReadFile(path)
}

// decodeAction prints the variant of a transaction followed by its
// normalized encoding.
func decodeAction(ctx *cli.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}

	var w transactions.Wrapper
	if expect := ctx.String(ExpectFlag.Name); expect != "" {
		kind, ok := transactions.ParseTxType(expect)
		if !ok {
			return fmt.Errorf("unknown transaction type %q", expect)
		}
		w, err = transactions.DecodeExpecting(data, kind)
	} else {
		w, err = transactions.Decode(data)
	}

	if err != nil {
		return errors.Wrap(err, "could not decode transaction")
	}

	encoded, err := w.MarshalJSON()
	if err != nil {
		return err
	}

	hash := "-"
	if h := w.Hash(); h != nil {
		hash = h.String()
	}

	out := ctx.App.Writer
	_, _ = fmt.Fprintf(out, "type:    %s\n", w.Type())
	_, _ = fmt.Fprintf(out, "version: %d\n", w.Version())
	_, _ = fmt.Fprintf(out, "hash:    %s\n", hash)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, encoded, "", "  "); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, pretty.String())
	return err
}

// variantsAction prints the catalogue as a table.
func variantsAction(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Type", "Version", "Wire type", "Required fields"})
	table.SetAutoWrapText(false)

	for _, sel := range transactions.Variants() {
		table.Append([]string{
			sel.Kind.String(),
			fmt.Sprintf("0x%x", sel.Version),
			sel.Kind.WireName(),
			strings.Join(sel.Fields(), ", "),
		})
	}

	table.Render()
	return nil
}
