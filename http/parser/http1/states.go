package http1

type parserState uint8

const (
	eMethodStart parserState = iota + 1
	eMethod
	eURLStart
	eURL
	eVersionStart
	eVersion
	eVersionCR
	eHeaderNameStart
	eHeaderName
	eHeaderDelimiter
	eHeaderValueStart
	eHeaderValue
	eHeaderValueCR
	eHeadersEndCR
	eFinished
)
