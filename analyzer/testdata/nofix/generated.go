// Code generated by hand for testing. DO NOT EDIT.

package nofix

func generated(ok bool) bool {
	return ok == true
}
