// Package docx models the WordprocessingML content this tool edits: a
// document body made of paragraphs and tables, paragraphs made of formatted
// runs. Only the parts the replace engine needs are parsed into typed
// structures; everything else (section properties, hyperlinks, drawings,
// bookmarks) is captured as raw XML and written back verbatim so that a
// rewritten document stays loadable by Word.
//
// The package also handles the .docx container itself: a document is a zip
// archive whose word/document.xml part holds the body. Open reads the
// archive, Write copies every part untouched and replaces only
// word/document.xml.
package docx
