package parser

import (
	"bufio"
	"strings"

	"github.com/fuinorg/objects4j-sub000/cmd/config"
	"github.com/fuinorg/objects4j-sub000/internal/apierror"
	"github.com/fuinorg/objects4j-sub000/internal/model"
)

type Parser interface {

	// ReadUpdates reads schedule updates from the file in a separate goroutine.
	// It returns a channel of updates.
	// The channel is closed when all updates are read, or when an error occurs.
	ReadUpdates() <-chan model.WrappedScheduleUpdate
}

type FileParser struct {
	scanner   *bufio.Scanner
	cfg       *config.Parser
	rowNumber int
}

func NewFileParser(scanner *bufio.Scanner, cfg *config.Parser) *FileParser {
	return &FileParser{
		scanner: scanner,
		cfg:     cfg,
	}
}

func (p *FileParser) ReadUpdates() <-chan model.WrappedScheduleUpdate {
	updatesChan := make(chan model.WrappedScheduleUpdate, p.cfg.UpdatesChanSize)

	go func() {
		defer close(updatesChan)

		for p.scanWithRowNumber() {
			if p.skipRow() {
				continue
			}

			update, err := p.readUpdate()
			if err != nil {
				updatesChan <- model.WrappedScheduleUpdate{Err: err}
				return
			}

			updatesChan <- model.WrappedScheduleUpdate{Update: update}
		}

		if err := p.scanner.Err(); err != nil {
			updatesChan <- model.WrappedScheduleUpdate{Err: &apierror.ParseError{
				RowNumber: p.rowNumber,
				UserMsg:   apierror.ErrScheduleInvalidFormat,
				BaseErr:   err,
			}}
		}
	}()

	return updatesChan
}

func (p *FileParser) scanWithRowNumber() bool {
	p.rowNumber++
	return p.scanner.Scan()
}

// skipRow reports whether the current row is blank or a comment.
func (p *FileParser) skipRow() bool {
	row := strings.TrimSpace(p.scanner.Text())
	return row == "" || (p.cfg.CommentPrefix != "" && strings.HasPrefix(row, p.cfg.CommentPrefix))
}

func (p *FileParser) readUpdate() (*model.ScheduleUpdate, error) {
	row := strings.TrimSpace(p.scanner.Text())

	key, hoursText, ok := strings.Cut(row, p.cfg.KeySeparator)
	if !ok {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrScheduleInvalidFormat,
		}
	}

	if key == "" {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrScheduleKeyNotSpecified,
		}
	}

	hours, err := model.ParseWeeklyOpeningHours(strings.TrimSpace(hoursText))
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseSchedule,
			BaseErr:   err,
		}
	}

	return model.NewScheduleUpdate(key, hours, p.rowNumber), nil
}
