// Package winapi wraps the few user32 calls used for monitors, window
// enumeration and error dialogs. It is empty on other platforms.
package winapi
