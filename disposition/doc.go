// Package disposition reads and writes the Content-Disposition header
// (RFC 6266).
//
// Parse is strict. It accepts only values that match the header grammar,
// rejects repeated parameters, and decodes RFC 5987 extended parameters such
// as filename*. Value.String is the inverse of Parse: it writes a filename
// as a quoted filename parameter, as a filename* parameter, or as both,
// depending on what characters the filename contains and on the fallback
// policy in effect. That way legacy clients still see a usable name.
//
//	v, err := disposition.New(disposition.WithFilename("планы.pdf"))
//	// attachment; filename="?????.pdf"; filename*=UTF-8''%D0%BF%D0%BB%D0%B0%D0%BD%D1%8B.pdf
//	fmt.Println(v)
package disposition
