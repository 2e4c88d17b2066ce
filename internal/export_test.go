package internal

var WatchReload = watchReload
