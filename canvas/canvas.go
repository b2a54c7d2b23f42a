// Package canvas provides the character grid that diagrams are drawn onto.
package canvas
