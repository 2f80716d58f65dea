package http1

import (
	"github.com/indigo-web/h1req/config"
	"github.com/indigo-web/h1req/http"
	"github.com/indigo-web/h1req/http/headers"
	"github.com/indigo-web/h1req/http/method"
	"github.com/indigo-web/h1req/internal/httpchars"
	"github.com/indigo-web/h1req/internal/span"
	"github.com/indigo-web/utils/pool"
)

var defaultConfig = config.Default()

// Parse parses the request head using the default config. See Parser.Parse for details.
func Parse(data []byte) (*http.Request, error) {
	builder := headers.NewBuilder(data, make([]span.Pair, 0, defaultConfig.Headers.Number.Default))

	return scan(data, defaultConfig, builder)
}

// Parser parses request heads and recycles storages of released requests. It must not
// be used concurrently, however the requests it produces may be.
type Parser struct {
	cfg      *config.Config
	storages pool.ObjectPool[[]span.Pair]
	builder  headers.Builder
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		cfg:      cfg,
		storages: pool.NewObjectPool[[]span.Pair](cfg.Pool.Size),
	}
}

// Parse scans the whole request head in a single pass. The data must contain the
// request-line and all the header fields, terminated by an empty line. Bytes after it
// are left untouched and are available via Request.Extra.
//
// The data is owned by the returned request from now on. Header names are lower-cased
// in-place, even if the parsing eventually fails.
func (p *Parser) Parse(data []byte) (*http.Request, error) {
	storage := p.storages.Acquire()
	if storage == nil {
		storage = make([]span.Pair, 0, p.cfg.Headers.Number.Default)
	}

	p.builder.Reset(data, storage)
	request, err := scan(data, p.cfg, &p.builder)
	if err != nil {
		p.storages.Release(p.builder.Finish().Unwrap()[:0])
		return nil, err
	}

	return request, nil
}

// Release takes back the header storage of the request, so it can be reused. The request
// must not be used after being released.
func (p *Parser) Release(request *http.Request) {
	if request == nil {
		return
	}

	p.storages.Release(request.Headers().Unwrap()[:0])
}

func scan(data []byte, cfg *config.Config, hdrs *headers.Builder) (*http.Request, error) {
	var (
		state    = eMethodStart
		node     = method.Root
		ok       bool
		m        method.Method
		target   span.Span
		key      span.Span
		mark     int
		lines    int
		consumed int
	)

	for i := 0; i < len(data) && state != eFinished; i++ {
		c := data[i]

		switch state {
		case eMethodStart:
			if node, ok = method.Step(method.Root, c); !ok {
				return nil, newError(InvalidMethod, i)
			}

			state = eMethod
		case eMethod:
			if httpchars.IsSpace(c) {
				if m = node.Method(); m == method.Unknown {
					return nil, newError(InvalidMethod, i)
				}

				state = eURLStart
				break
			}

			if node, ok = method.Step(node, c); !ok {
				return nil, newError(InvalidMethod, i)
			}
		case eURLStart:
			if !httpchars.IsVisual(c) {
				return nil, newError(InvalidURL, i)
			}

			mark = i
			state = eURL
		case eURL:
			switch {
			case httpchars.IsSpace(c):
				target = span.New(mark, i)
				state = eVersionStart
			case !httpchars.IsVisual(c):
				return nil, newError(InvalidURL, i)
			}
		case eVersionStart:
			if !httpchars.IsVisual(c) {
				return nil, newError(InvalidVersion, i)
			}

			state = eVersion
		case eVersion:
			switch {
			case httpchars.IsCR(c):
				state = eVersionCR
			case !httpchars.IsVisual(c):
				return nil, newError(InvalidVersion, i)
			}
		case eVersionCR:
			if !httpchars.IsLF(c) {
				return nil, newError(InvalidLineEnding, i)
			}

			state = eHeaderNameStart
		case eHeaderNameStart:
			switch {
			case httpchars.IsCR(c):
				state = eHeadersEndCR
			case httpchars.IsTokenChar(c):
				data[i] = httpchars.ToLower(c)
				mark = i
				state = eHeaderName
			default:
				return nil, newError(InvalidHeaderName, i)
			}
		case eHeaderName:
			switch {
			case c == ':':
				key = span.New(mark, i)
				state = eHeaderDelimiter
			case httpchars.IsTokenChar(c):
				data[i] = httpchars.ToLower(c)
			default:
				return nil, newError(InvalidHeaderName, i)
			}
		case eHeaderDelimiter:
			if !httpchars.IsSpace(c) {
				return nil, newError(InvalidHeaderDelimiter, i)
			}

			state = eHeaderValueStart
		case eHeaderValueStart:
			if !httpchars.IsVisual(c) {
				return nil, newError(InvalidHeaderValue, i)
			}

			mark = i
			state = eHeaderValue
		case eHeaderValue:
			switch {
			case httpchars.IsCR(c):
				if lines++; lines > cfg.Headers.Number.Maximal {
					return nil, newError(TooManyHeaders, key.Start)
				}

				hdrs.Add(key, span.New(mark, i))
				state = eHeaderValueCR
			case httpchars.IsVisual(c), httpchars.IsSpace(c):
			default:
				return nil, newError(InvalidHeaderValue, i)
			}
		case eHeaderValueCR:
			if !httpchars.IsLF(c) {
				return nil, newError(InvalidLineEnding, i)
			}

			state = eHeaderNameStart
		case eHeadersEndCR:
			if !httpchars.IsLF(c) {
				return nil, newError(InvalidLineEnding, i)
			}

			consumed = i + 1
			state = eFinished
		}
	}

	if state != eFinished {
		return nil, newError(IncompleteMessage, len(data))
	}

	return http.NewRequest(data, m, target, hdrs.Finish(), consumed), nil
}
