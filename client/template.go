package client

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

/*

solver pages

*/

// A templateSolverPage holds the values the solver page template
// fills in.
type templateSolverPage struct {
	SessionID, PuzzleName     string
	Title, TopHead            string
	IconFile, CssFile, JsFile string
	Puzzle                    templatePuzzle
	ApplicationFooter         string
}

// templatePuzzle is the row-by-row structure the puzzle grid
// section of the solver page expects.
type templatePuzzle [][]templatePuzzleCell

// A templatePuzzleCell holds one cell's index, display value,
// and CSS styling classes.
type templatePuzzleCell struct {
	Index                   int
	Value                   template.HTML
	Shade, HBorder, VBorder string
}

// add solver statics to the static list
func init() {
	staticResourcePaths["/solver.js"] = filepath.Join("solver", "puzzle.js")
	staticResourcePaths["/solver.css"] = filepath.Join("solver", "puzzle.css")
}

// SolverPage executes the solver page template over the given
// session and grid values, and returns the page content as a
// string.  Problems render the error page instead.
func SolverPage(sessionID, puzzleName string, values []int) string {
	tp, err := gridTemplatePuzzle(values)
	if err != nil {
		return ErrorPage(err)
	}

	tsp := templateSolverPage{
		SessionID:         sessionID,
		PuzzleName:        puzzleName,
		Title:             fmt.Sprintf("%s: Solver", brandName),
		TopHead:           "Puzzle Solver",
		IconFile:          iconPath,
		CssFile:           "/solver.css",
		JsFile:            "/solver.js",
		Puzzle:            tp,
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("solver")
	if err != nil {
		return ErrorPage(fmt.Errorf("Couldn't load the %q template: %v", "solver", err))
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, tsp); err != nil {
		return ErrorPage(err)
	}
	return buf.String()
}

// gridTemplatePuzzle shapes grid values into template rows with
// the box shading and border classes the stylesheet keys on.
// Errors mean the value count has the wrong shape for a square
// grid of square boxes.
func gridTemplatePuzzle(values []int) (templatePuzzle, error) {
	size, ok := intSquareRoot(len(values))
	if !ok {
		return nil, fmt.Errorf("Puzzle cell count %v is not a square", len(values))
	}
	boxSize, ok := intSquareRoot(size)
	if !ok {
		return nil, fmt.Errorf("Puzzle side length %v is not a square", size)
	}
	rows := make(templatePuzzle, size)
	for i := 0; i < size; i++ {
		rows[i] = make([]templatePuzzleCell, size)
		// top, bottom, or middle row of its box
		hborder := "middle"
		if i%boxSize == 0 {
			hborder = "top"
		} else if i%boxSize == boxSize-1 {
			hborder = "bottom"
		}
		for j := 0; j < size; j++ {
			index := i*size + j
			// empty cells hold a non-breaking space so the table
			// renders them at full size; values over 9 use the
			// letter symbols the wire form uses
			value := template.HTML("&nbsp;")
			if v := values[index]; v > 9 {
				value = template.HTML(string(rune('A' + v - 10)))
			} else if v > 0 {
				value = template.HTML(fmt.Sprint(v))
			}
			// alternating box shading
			shade := "lighter"
			if (i/boxSize+j/boxSize)%2 == 0 {
				shade = "darker"
			}
			// left, center, or right column of its box
			vborder := "center"
			if j%boxSize == 0 {
				vborder = "left"
			} else if j%boxSize == boxSize-1 {
				vborder = "right"
			}
			rows[i][j] = templatePuzzleCell{
				Index:   index + 1,
				Value:   value,
				Shade:   shade,
				HBorder: hborder,
				VBorder: vborder,
			}
		}
	}
	return rows, nil
}

// intSquareRoot finds the integer square root of val, if it has
// one.
func intSquareRoot(val int) (int, bool) {
	for i := 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return 0, false
}

/*

error pages

*/

// A templateErrorPage holds the values the error page template
// fills in.
type templateErrorPage struct {
	Title, TopHead, Message string
	IconFile                string
	ApplicationFooter       string
}

// ErrorPage renders the error page for the given problem.  When
// even that fails, it falls back to plain text, so callers
// always get something to send.
func ErrorPage(e error) string {
	tep := templateErrorPage{
		Title:             fmt.Sprintf("%s: Error", brandName),
		TopHead:           "Error Page",
		Message:           e.Error(),
		IconFile:          iconPath,
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("error")
	if err != nil {
		return fmt.Sprintf("Couldn't load the %q template: %v", "error", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, tep); err != nil {
		return fmt.Sprintf("A templating error has occurred: %v", err)
	}
	return buf.String()
}

/*

application footer

*/

const (
	applicationNameEnvVar     = "APPLICATION_NAME"
	applicationEnvEnvVar      = "APPLICATION_ENV"
	applicationVersionEnvVar  = "APPLICATION_VERSION"
	applicationInstanceEnvVar = "APPLICATION_INSTANCE"
	applicationBuildEnvVar    = "APPLICATION_BUILD"
)

// applicationFooter builds the deployment tag that shows at the
// bottom of every page.
func applicationFooter() string {
	appName := os.Getenv(applicationNameEnvVar)
	appEnv := os.Getenv(applicationEnvEnvVar)
	appVersion := os.Getenv(applicationVersionEnvVar)
	appInstance := os.Getenv(applicationInstanceEnvVar)
	appBuild := os.Getenv(applicationBuildEnvVar)

	if appName == "" {
		appName = brandName
	}
	if appEnv == "" {
		appEnv = "local"
	}
	if appVersion != "" {
		appVersion = " " + appVersion
	}
	if len(appBuild) >= 7 {
		appBuild = appBuild[:7]
	}
	if appInstance != "" {
		appInstance = " (instance " + appInstance + ")"
	}

	switch appEnv {
	case "local":
		return "[" + appName + " local]"
	case "dev":
		return "[" + appName + " CI/CD]"
	case "stg":
		return "[" + appName + appVersion + " <" + appBuild + ">]"
	case "prd":
		return "[" + appName + appVersion + " <" + appBuild + ">" + appInstance + "]"
	}
	return "[" + appName + " <??>]"
}
