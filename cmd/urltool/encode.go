package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/services"
	"gridnav/internal/service/urlstate"
)

type encodeFlags struct {
	base     string
	org      string
	ws       int
	doc      string
	slug     string
	mode     string
	page     string
	homePage string
	billing  string
	welcome  string
	hash     string
	params   []string
	newUI    string
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	var f encodeFlags
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a navigation state into a URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := f.state()
			if err != nil {
				return err
			}
			base := f.base
			if base == "" {
				base = opts.cfg.HomeURL
			}
			encoded, err := opts.navService().EncodeURL(cmd.Context(), &services.EncodeURLRequest{
				Org:   opts.cfg.Org,
				State: state,
				Base:  base,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"url": encoded})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.base, "base", "", "base URL (defaults to HOME_URL)")
	flags.StringVar(&f.org, "org", "", "org to link to")
	flags.IntVar(&f.ws, "ws", 0, "workspace id")
	flags.StringVar(&f.doc, "doc", "", "document id or url id")
	flags.StringVar(&f.slug, "slug", "", "slug to show after the url id")
	flags.StringVar(&f.mode, "mode", "", "open mode: default, view or fork")
	flags.StringVar(&f.page, "page", "", "document page: a number, new, code or acl")
	flags.StringVar(&f.homePage, "home-page", "", "home page: all, workspace or trash")
	flags.StringVar(&f.billing, "billing", "", "billing page: billing, payment or plans")
	flags.StringVar(&f.welcome, "welcome", "", "welcome page")
	flags.StringVar(&f.hash, "hash", "", "cell link as section.row[.col]")
	flags.StringArrayVar(&f.params, "param", nil, "query parameter as key=value (repeatable)")
	flags.StringVar(&f.newUI, "newui", "", "new UI flag: true or false")
	return cmd
}

func (f *encodeFlags) state() (navigation.State, error) {
	state := navigation.State{
		Org:      f.org,
		DocID:    f.doc,
		Slug:     f.slug,
		Mode:     navigation.OpenMode(f.mode),
		HomePage: navigation.HomePage(f.homePage),
		Billing:  navigation.BillingPage(f.billing),
		Welcome:  navigation.WelcomePage(f.welcome),
	}
	if f.ws != 0 {
		state.WorkspaceID = navigation.Int(f.ws)
	}
	if f.page != "" {
		page := urlstate.ParseDocPage(f.page)
		state.DocPage = &page
	}
	if f.newUI != "" {
		v, err := strconv.ParseBool(f.newUI)
		if err != nil {
			return state, fmt.Errorf("--newui: %w", err)
		}
		state.NewUI = navigation.Bool(v)
	}
	if f.hash != "" {
		link, err := parseHashFlag(f.hash)
		if err != nil {
			return state, err
		}
		state.Hash = link
	}
	if len(f.params) > 0 {
		params, err := parseParamFlags(f.params)
		if err != nil {
			return state, err
		}
		state.Params = params
	}
	return state, nil
}

// parseHashFlag reads "section.row[.col]".
func parseHashFlag(s string) (*navigation.HashLink, error) {
	fields := strings.Split(s, ".")
	if len(fields) < 2 || len(fields) > 3 {
		return nil, fmt.Errorf("--hash %q: want section.row[.col]", s)
	}
	ids := make([]int, 3)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("--hash %q: %w", s, err)
		}
		ids[i] = n
	}
	return &navigation.HashLink{SectionID: ids[0], RowID: ids[1], ColRef: ids[2]}, nil
}

func parseParamFlags(pairs []string) (*navigation.QueryParams, error) {
	params := &navigation.QueryParams{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("--param %q: want key=value", pair)
		}
		switch key {
		case "billingPlan":
			params.BillingPlan = value
		case "billingTask":
			task, ok := navigation.ParseBillingTask(value)
			if !ok {
				return nil, fmt.Errorf("--param %q: unknown billing task", pair)
			}
			params.BillingTask = task
		case "embed":
			params.Embed = value == "true"
		case "style":
			style, ok := navigation.ParseInterfaceStyle(value)
			if !ok {
				return nil, fmt.Errorf("--param %q: unknown style", pair)
			}
			params.Style = style
		case "compare":
			params.Compare = value
		case "aclUI":
			params.ACLUI = value == "true"
		default:
			return nil, fmt.Errorf("--param %q: unknown parameter", pair)
		}
	}
	return params, nil
}
