package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/ntriple-go/builder"
	"github.com/geoknoesis/ntriple-go/grom"
	"github.com/geoknoesis/ntriple-go/rdf"
	"github.com/geoknoesis/ntriple-go/response"
	"github.com/geoknoesis/ntriple-go/sortutil"
)

var (
	queryTypes          []string
	querySort           []string
	queryReverse        bool
	queryOrder          []string
	queryAppendRejected bool
	queryParser         string
	queryStrict         bool
	queryAliases        []string
	queryNoColor        bool
	queryVerbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "ntq [file|url|-]",
	Short: "Query nodes in an N-Triples document",
	Long: `Parse an N-Triples document into nodes, optionally filter them by rdf:type
and sort them by attribute, then print each node with its attributes.

The input is a file path, an http(s) URL, or "-" (the default) for stdin.
Attribute names are predicate local names, e.g. personGivenName.

Examples:
  ntq people.nt
  ntq -t http://id.example.org/schema/Person -s personFamilyName people.nt
  ntq --order seatCount:desc --order personGivenName:asc people.nt
  ntq --alias http://id.example.org/schema/Person=name:personGivenName -s name people.nt
  curl -s https://api.example.org/people | ntq --parser json-gold`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runQuery,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&queryTypes, "type", "t", nil, "Only show nodes of these rdf:type IRIs (repeatable, blank_node for untyped nodes)")
	rootCmd.Flags().StringSliceVarP(&querySort, "sort", "s", nil, "Sort ascending by these attributes")
	rootCmd.Flags().BoolVar(&queryReverse, "reverse", false, "Reverse the --sort order")
	rootCmd.Flags().StringSliceVar(&queryOrder, "order", nil, "Sort by attribute:direction pairs, e.g. count:desc (overrides --sort)")
	rootCmd.Flags().BoolVar(&queryAppendRejected, "append-rejected", false, "Place nodes missing a sort attribute last instead of first")
	rootCmd.Flags().StringVar(&queryParser, "parser", rdf.DecoderNTriples, "Parser backend ("+strings.Join(rdf.Decoders(), ", ")+")")
	rootCmd.Flags().BoolVar(&queryStrict, "strict", false, "Reject relative or malformed IRIs")
	rootCmd.Flags().StringSliceVar(&queryAliases, "alias", nil, "Add an alias as Type=alias:attribute (repeatable)")
	rootCmd.Flags().BoolVar(&queryNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&queryVerbose, "verbose", "v", false, "Enable debug logging")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryNoColor {
		color.NoColor = true
	}
	logger, err := newLogger(queryVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	keys, err := parseOrder(queryOrder)
	if err != nil {
		return err
	}
	aliases, err := parseAliases(queryAliases)
	if err != nil {
		return err
	}

	opts := []builder.Option{builder.OptParser(queryParser), builder.OptLogger(logger)}
	if queryStrict {
		decodeOpts := rdf.DefaultDecodeOptions()
		decodeOpts.StrictIRIs = true
		opts = append(opts, builder.OptDecodeOptions(decodeOpts))
	}
	if len(aliases) > 0 {
		opts = append(opts, builder.OptDecorator(aliases))
	}
	b, err := builder.New(opts...)
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	resp, err := build(cmd.Context(), b, source, cmd.InOrStdin())
	if err != nil {
		return err
	}

	q := query{
		keys:            keys,
		sort:            querySort,
		reverse:         queryReverse,
		prependRejected: !queryAppendRejected,
	}
	p := newPrinter(cmd.OutOrStdout(), resp)
	if len(queryTypes) == 0 {
		p.printNodes(q.apply(resp))
		return nil
	}
	for i, filtered := range resp.FilterMany(queryTypes...) {
		if len(queryTypes) > 1 {
			p.printSection(queryTypes[i], filtered.Len())
		}
		p.printNodes(q.apply(filtered))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func build(ctx context.Context, b *builder.Builder, source string, stdin io.Reader) (*response.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch {
	case source == "-":
		body, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b.Build(ctx, body)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fetch(ctx, b, source)
	default:
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		return b.Build(ctx, body)
	}
}

func fetch(ctx context.Context, b *builder.Builder, url string) (*response.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/n-triples")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return b.BuildHTTP(ctx, resp)
}

// query holds the sort requested on the command line.
type query struct {
	keys            []sortutil.Key
	sort            []string
	reverse         bool
	prependRejected bool
}

func (q query) apply(resp *response.Response) []*grom.Node {
	nodes := resp.Nodes()
	opt := sortutil.OptPrependRejected(q.prependRejected)
	switch {
	case len(q.keys) > 0:
		return sortutil.MultiDirectionSort(nodes, q.keys, opt)
	case len(q.sort) > 0 && q.reverse:
		return sortutil.ReverseSortBy(nodes, q.sort, opt)
	case len(q.sort) > 0:
		return sortutil.SortBy(nodes, q.sort, opt)
	}
	return nodes
}
