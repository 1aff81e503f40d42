/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/restyle/internal/styles"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the supported writing styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := styles.NewCatalog()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tTEMPERATURE\tPROMPT")
		for _, p := range catalog.Profiles() {
			snippet := p.Prompt
			if len(snippet) > 60 {
				snippet = snippet[:57] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f [%.2f-%.2f]\t%s\n",
				p.ID, p.Category,
				p.BaseTemperature, p.MinTemperature, p.MaxTemperature,
				snippet)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
