// Package cli handles cmd line input and lookups for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/lexivar/internal/logger"
	"github.com/bastiangx/lexivar/pkg/variant"
)

var log = logger.Default("cli")

// InputHandler processes user input from stdin and prints ranked variants.
// Single words run a variant lookup, anything with whitespace runs full text
// matching through the segmenter.
type InputHandler struct {
	model  *variant.Model
	params variant.SearchParameters
	cache  *variant.Cache
}

// NewInputHandler handles initialization of the InputHandler with lookup parameters
func NewInputHandler(model *variant.Model, params variant.SearchParameters) *InputHandler {
	return &InputHandler{
		model:  model,
		params: params,
		cache:  variant.NewCache(),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("lexivar CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word or sentence and press Enter to see variants (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	if strings.ContainsAny(line, " \t") {
		results, err := h.model.FindAllMatches(line, h.params)
		if err != nil {
			log.Errorf("match failed: %v", err)
			return
		}
		for _, res := range results {
			printResult(res)
		}
		return
	}
	res, err := h.cache.FindVariants(h.model, line, h.params)
	if err != nil {
		log.Errorf("lookup failed: %v", err)
		return
	}
	printResult(res)
}

func printResult(res variant.VariantResult) {
	if len(res.Variants) == 0 {
		fmt.Printf("%s\t(no variants)\n", res.Input)
		return
	}
	for i, v := range res.Variants {
		fmt.Printf("%s\t#%d %s\tscore=%.2f\tfreq=%d\tlexicons=%s\n",
			res.Input, i+1, v.Text, v.Score, v.Frequency, strings.Join(v.Lexicons, ","))
	}
}
