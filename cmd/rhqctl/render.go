package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/disambiguation"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
	gormstore "github.com/rhq-project/rhq-in-go/pkg/server/store/gorm"
)

var renderCmd = &cobra.Command{
	Use:   "render <resource-id>",
	Short: "Print the breadcrumb of a resource",
	Long: `Print a resource and its ancestry as a single line.

Templates reference %id, %name, %type.name and %type.plugin. A field may be
written %[prefix]field[suffix]; prefix and suffix are only printed when the
field has a value.

Example:
  rhqctl render 10001
  rhqctl render 10001 --order descending --separator /
  rhqctl render 10001 --template '%name' --no-parents`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid resource id %q\n", args[0])
			os.Exit(1)
		}
		renderer, err := rendererFromFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		db, err := connect(config.Get())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		line, err := renderResource(gormstore.NewResourcesStore(db), id, renderer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render resource %d: %v\n", id, err)
			os.Exit(1)
		}
		fmt.Println(line)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("template", disambiguation.DefaultSegmentTemplate, "segment template")
	renderCmd.Flags().String("singleton-template", disambiguation.DefaultSegmentTemplate, "segment template for singleton resource types")
	renderCmd.Flags().String("separator", disambiguation.DefaultSegmentSeparator, "separator between segments")
	renderCmd.Flags().String("order", disambiguation.RenderingOrderAscending.String(), "ascending or descending")
	renderCmd.Flags().Bool("no-resource", false, "omit the resource itself")
	renderCmd.Flags().Bool("no-parents", false, "omit the ancestry")
}

func rendererFromFlags(cmd *cobra.Command) (*disambiguation.Renderer, error) {
	r := disambiguation.NewRenderer()

	order, _ := cmd.Flags().GetString("order")
	o, err := disambiguation.RenderingOrderString(order)
	if err != nil {
		return nil, err
	}
	r.Order = o

	template, _ := cmd.Flags().GetString("template")
	r.SetSegmentTemplate(template)
	singleton, _ := cmd.Flags().GetString("singleton-template")
	r.SetSingletonSegmentTemplate(singleton)
	r.SegmentSeparator, _ = cmd.Flags().GetString("separator")

	noResource, _ := cmd.Flags().GetBool("no-resource")
	noParents, _ := cmd.Flags().GetBool("no-parents")
	r.IncludeResource = !noResource
	r.IncludeParents = !noParents
	return r, nil
}

func renderResource(resources store.ResourcesStore, resourceID int, r *disambiguation.Renderer) (string, error) {
	res, err := resources.FetchResource(resourceID)
	if err != nil {
		return "", err
	}
	var parents []model.Resource
	if r.IncludeParents {
		if parents, err = resources.Ancestry(resourceID); err != nil {
			return "", err
		}
	}
	return r.Render(disambiguation.NewReport(*res, parents)), nil
}
